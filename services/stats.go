package services

import (
	"time"

	"github.com/ArunKushhhh/TaskPro-Backend/models"
)

// ProjectWithTasks pairs a project with its populated tasks for aggregation.
type ProjectWithTasks struct {
	Project models.Project
	Tasks   []models.Task
}

var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func sameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// BuildWorkspaceStats computes the dashboard aggregation over the given
// projects. Projects are expected in createdAt-descending order; the first
// five become recentProjects. The 7-day trend covers the 7 calendar days
// ending on now's date, inclusive.
func BuildWorkspaceStats(projects []ProjectWithTasks, now time.Time) *models.WorkspaceStats {
	totalProjects := len(projects)

	totalTasks := 0
	totalProjectInProgress := 0
	totalTasksCompleted := 0
	totalTaskToDo := 0
	totalTaskInProgress := 0

	for _, p := range projects {
		totalTasks += len(p.Tasks)
		if p.Project.Status == models.ProjectInProgress {
			totalProjectInProgress++
		}
		for _, task := range p.Tasks {
			switch task.Status {
			case models.StatusDone:
				totalTasksCompleted++
			case models.StatusToDo:
				totalTaskToDo++
			case models.StatusInProgress:
				totalTaskInProgress++
			}
		}
	}

	// Upcoming: due strictly after now and at most 7 days out. Instant
	// comparison, not calendar-day truncation.
	upcomingCutoff := now.Add(7 * 24 * time.Hour)
	upcomingTasks := []models.Task{}
	for _, p := range projects {
		for _, task := range p.Tasks {
			if task.DueDate.IsZero() {
				continue
			}
			if task.DueDate.After(now) && !task.DueDate.After(upcomingCutoff) {
				upcomingTasks = append(upcomingTasks, task)
			}
		}
	}

	// Trailing 7 calendar days, oldest first, today last. Exactly 7 distinct
	// days so weekday-name bucket keys cannot alias.
	last7Days := make([]time.Time, 7)
	for i := 0; i < 7; i++ {
		last7Days[i] = now.AddDate(0, 0, i-6)
	}

	taskTrendsData := make([]models.TaskTrend, 7)
	for i, name := range weekdayNames {
		taskTrendsData[i] = models.TaskTrend{Name: name}
	}

	for _, p := range projects {
		for _, task := range p.Tasks {
			for _, day := range last7Days {
				if !sameCalendarDay(day, task.UpdatedAt) {
					continue
				}
				bucket := &taskTrendsData[int(day.Weekday())]
				switch task.Status {
				case models.StatusDone:
					bucket.Completed++
				case models.StatusToDo:
					bucket.ToDo++
				case models.StatusInProgress:
					bucket.InProgress++
				}
				break
			}
		}
	}

	// On Hold and Cancelled are deliberately left out of this chart.
	projectStatusData := []models.ChartSlice{
		{Name: "Completed", Value: 0, Color: "#10b981"},
		{Name: "In Progress", Value: 0, Color: "#3b82f6"},
		{Name: "Planning", Value: 0, Color: "#f59e0b"},
	}
	for _, p := range projects {
		switch p.Project.Status {
		case models.ProjectCompleted:
			projectStatusData[0].Value++
		case models.ProjectInProgress:
			projectStatusData[1].Value++
		case models.ProjectPlanning:
			projectStatusData[2].Value++
		}
	}

	taskPriorityData := []models.ChartSlice{
		{Name: "High", Value: 0, Color: "#ef4444"},
		{Name: "Medium", Value: 0, Color: "#f59e0b"},
		{Name: "Low", Value: 0, Color: "#10b981"},
	}
	for _, p := range projects {
		for _, task := range p.Tasks {
			switch task.Priority {
			case models.PriorityHigh:
				taskPriorityData[0].Value++
			case models.PriorityMedium:
				taskPriorityData[1].Value++
			case models.PriorityLow:
				taskPriorityData[2].Value++
			}
		}
	}

	// Archived-but-done tasks count toward the total but not the completed
	// numerator.
	workspaceProductivityData := []models.ProjectProductivity{}
	for _, p := range projects {
		completed := 0
		for _, task := range p.Tasks {
			if task.Status == models.StatusDone && !task.IsArchived {
				completed++
			}
		}
		workspaceProductivityData = append(workspaceProductivityData, models.ProjectProductivity{
			Name:      p.Project.Title,
			Completed: completed,
			Total:     len(p.Tasks),
		})
	}

	recentProjects := []models.Project{}
	for i, p := range projects {
		if i >= 5 {
			break
		}
		recentProjects = append(recentProjects, p.Project)
	}

	return &models.WorkspaceStats{
		Stats: []int{
			totalProjects,
			totalTasks,
			totalProjectInProgress,
			totalTasksCompleted,
			totalTaskToDo,
			totalTaskInProgress,
		},
		TaskTrendsData:            taskTrendsData,
		ProjectStatusData:         projectStatusData,
		TaskPriorityData:          taskPriorityData,
		WorkspaceProductivityData: workspaceProductivityData,
		UpcomingTasks:             upcomingTasks,
		RecentProjects:            recentProjects,
	}
}
