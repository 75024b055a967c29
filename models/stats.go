package models

// TaskTrend is one weekday bucket of the 7-day trend chart.
type TaskTrend struct {
	Name       string `json:"name"`
	Completed  int    `json:"completed"`
	ToDo       int    `json:"toDo"`
	InProgress int    `json:"inProgress"`
}

// ChartSlice is one labeled slice of a distribution chart.
type ChartSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// ProjectProductivity pairs a project with its completed/total task counts.
// Completed excludes archived tasks; Total does not.
type ProjectProductivity struct {
	Name      string `json:"name"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

// WorkspaceStats is the aggregated dashboard payload for one workspace.
// Stats is the ordered 6-tuple [totalProjects, totalTasks,
// totalProjectInProgress, totalTasksCompleted, totalTaskToDo,
// totalTaskInProgress].
type WorkspaceStats struct {
	Stats                     []int                 `json:"stats"`
	TaskTrendsData            []TaskTrend           `json:"taskTrendsData"`
	ProjectStatusData         []ChartSlice          `json:"projectStatusData"`
	TaskPriorityData          []ChartSlice          `json:"taskPriorityData"`
	WorkspaceProductivityData []ProjectProductivity `json:"workspaceProductivityData"`
	UpcomingTasks             []Task                `json:"upcomingTasks"`
	RecentProjects            []Project             `json:"recentProjects"`
}
