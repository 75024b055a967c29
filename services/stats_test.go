package services

import (
	"testing"
	"time"

	"github.com/ArunKushhhh/TaskPro-Backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 2025-01-08 is a Wednesday, so the trailing window is Thu Jan 2 .. Wed Jan 8.
var statsNow = time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC)

func newProject(title string, status models.ProjectStatus) models.Project {
	return models.Project{
		ID:     primitive.NewObjectID(),
		Title:  title,
		Status: status,
	}
}

func newTask(status models.TaskStatus, priority models.TaskPriority) models.Task {
	return models.Task{
		ID:       primitive.NewObjectID(),
		Status:   status,
		Priority: priority,
	}
}

func TestBuildWorkspaceStatsTotals(t *testing.T) {
	alpha := newProject("Alpha", models.ProjectInProgress)
	beta := newProject("Beta", models.ProjectPlanning)

	projects := []ProjectWithTasks{
		{Project: alpha, Tasks: []models.Task{
			newTask(models.StatusDone, models.PriorityHigh),
			newTask(models.StatusToDo, models.PriorityLow),
			newTask(models.StatusInProgress, models.PriorityMedium),
		}},
		{Project: beta, Tasks: []models.Task{
			newTask(models.StatusDone, models.PriorityHigh),
		}},
	}

	stats := BuildWorkspaceStats(projects, statsNow)

	require.Len(t, stats.Stats, 6)
	assert.Equal(t, 2, stats.Stats[0], "totalProjects")
	assert.Equal(t, 4, stats.Stats[1], "totalTasks")
	assert.Equal(t, 1, stats.Stats[2], "totalProjectInProgress")
	assert.Equal(t, 2, stats.Stats[3], "totalTasksCompleted")
	assert.Equal(t, 1, stats.Stats[4], "totalTaskToDo")
	assert.Equal(t, 1, stats.Stats[5], "totalTaskInProgress")

	// Every task carries one of the three statuses here, so the breakdown
	// sums to the total.
	assert.Equal(t, stats.Stats[1], stats.Stats[3]+stats.Stats[4]+stats.Stats[5])
}

func TestBuildWorkspaceStatsUpcomingTasks(t *testing.T) {
	project := newProject("Alpha", models.ProjectInProgress)

	inThreeDays := newTask(models.StatusToDo, models.PriorityLow)
	inThreeDays.Title = "due in 3 days"
	inThreeDays.DueDate = statsNow.Add(3 * 24 * time.Hour)

	inEightDays := newTask(models.StatusToDo, models.PriorityLow)
	inEightDays.DueDate = statsNow.Add(8 * 24 * time.Hour)

	dueExactlyNow := newTask(models.StatusToDo, models.PriorityLow)
	dueExactlyNow.DueDate = statsNow

	overdue := newTask(models.StatusToDo, models.PriorityLow)
	overdue.DueDate = statsNow.Add(-24 * time.Hour)

	atBoundary := newTask(models.StatusToDo, models.PriorityLow)
	atBoundary.Title = "due in exactly 7 days"
	atBoundary.DueDate = statsNow.Add(7 * 24 * time.Hour)

	noDueDate := newTask(models.StatusToDo, models.PriorityLow)

	projects := []ProjectWithTasks{
		{Project: project, Tasks: []models.Task{inThreeDays, inEightDays, dueExactlyNow, overdue, atBoundary, noDueDate}},
	}

	stats := BuildWorkspaceStats(projects, statsNow)

	require.Len(t, stats.UpcomingTasks, 2)
	titles := []string{stats.UpcomingTasks[0].Title, stats.UpcomingTasks[1].Title}
	assert.Contains(t, titles, "due in 3 days")
	assert.Contains(t, titles, "due in exactly 7 days")
}

func TestBuildWorkspaceStatsTaskTrends(t *testing.T) {
	project := newProject("Alpha", models.ProjectInProgress)

	updatedToday := newTask(models.StatusDone, models.PriorityLow)
	updatedToday.UpdatedAt = statsNow.Add(-2 * time.Hour) // Wed Jan 8

	updatedSunday := newTask(models.StatusToDo, models.PriorityLow)
	updatedSunday.UpdatedAt = time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC)

	alsoSunday := newTask(models.StatusInProgress, models.PriorityLow)
	alsoSunday.UpdatedAt = time.Date(2025, 1, 5, 23, 59, 0, 0, time.UTC)

	outsideWindow := newTask(models.StatusDone, models.PriorityLow)
	outsideWindow.UpdatedAt = statsNow.AddDate(0, 0, -8)

	projects := []ProjectWithTasks{
		{Project: project, Tasks: []models.Task{updatedToday, updatedSunday, alsoSunday, outsideWindow}},
	}

	stats := BuildWorkspaceStats(projects, statsNow)

	require.Len(t, stats.TaskTrendsData, 7)
	names := make([]string, 7)
	for i, bucket := range stats.TaskTrendsData {
		names[i] = bucket.Name
	}
	assert.Equal(t, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, names)

	sunday := stats.TaskTrendsData[0]
	assert.Equal(t, 1, sunday.ToDo)
	assert.Equal(t, 1, sunday.InProgress)
	assert.Equal(t, 0, sunday.Completed)

	wednesday := stats.TaskTrendsData[3]
	assert.Equal(t, 1, wednesday.Completed)

	// Buckets sum to the number of tasks updated inside the window; no task
	// lands in two buckets.
	total := 0
	for _, bucket := range stats.TaskTrendsData {
		total += bucket.Completed + bucket.ToDo + bucket.InProgress
	}
	assert.Equal(t, 3, total)
}

func TestBuildWorkspaceStatsProjectStatusDistribution(t *testing.T) {
	projects := []ProjectWithTasks{
		{Project: newProject("A", models.ProjectCompleted)},
		{Project: newProject("B", models.ProjectCompleted)},
		{Project: newProject("C", models.ProjectInProgress)},
		{Project: newProject("D", models.ProjectPlanning)},
		{Project: newProject("E", models.ProjectOnHold)},
		{Project: newProject("F", models.ProjectCancelled)},
	}

	stats := BuildWorkspaceStats(projects, statsNow)

	require.Len(t, stats.ProjectStatusData, 3)
	assert.Equal(t, "Completed", stats.ProjectStatusData[0].Name)
	assert.Equal(t, 2, stats.ProjectStatusData[0].Value)
	assert.Equal(t, "In Progress", stats.ProjectStatusData[1].Name)
	assert.Equal(t, 1, stats.ProjectStatusData[1].Value)
	assert.Equal(t, "Planning", stats.ProjectStatusData[2].Name)
	assert.Equal(t, 1, stats.ProjectStatusData[2].Value)

	// On Hold and Cancelled stay out of this chart.
	total := 0
	for _, slice := range stats.ProjectStatusData {
		total += slice.Value
	}
	assert.Equal(t, 4, total)
}

func TestBuildWorkspaceStatsTaskPriorityDistribution(t *testing.T) {
	project := newProject("Alpha", models.ProjectInProgress)
	projects := []ProjectWithTasks{
		{Project: project, Tasks: []models.Task{
			newTask(models.StatusToDo, models.PriorityHigh),
			newTask(models.StatusToDo, models.PriorityHigh),
			newTask(models.StatusToDo, models.PriorityMedium),
			newTask(models.StatusToDo, models.PriorityLow),
		}},
	}

	stats := BuildWorkspaceStats(projects, statsNow)

	require.Len(t, stats.TaskPriorityData, 3)
	assert.Equal(t, 2, stats.TaskPriorityData[0].Value, "High")
	assert.Equal(t, 1, stats.TaskPriorityData[1].Value, "Medium")
	assert.Equal(t, 1, stats.TaskPriorityData[2].Value, "Low")
}

func TestBuildWorkspaceStatsProductivity(t *testing.T) {
	project := newProject("Alpha", models.ProjectInProgress)

	done := newTask(models.StatusDone, models.PriorityLow)
	doneButArchived := newTask(models.StatusDone, models.PriorityLow)
	doneButArchived.IsArchived = true
	toDo := newTask(models.StatusToDo, models.PriorityLow)

	projects := []ProjectWithTasks{
		{Project: project, Tasks: []models.Task{done, doneButArchived, toDo}},
	}

	stats := BuildWorkspaceStats(projects, statsNow)

	require.Len(t, stats.WorkspaceProductivityData, 1)
	entry := stats.WorkspaceProductivityData[0]
	assert.Equal(t, "Alpha", entry.Name)
	assert.Equal(t, 1, entry.Completed, "archived Done tasks are excluded from the numerator")
	assert.Equal(t, 3, entry.Total, "archived tasks still count toward the total")
}

func TestBuildWorkspaceStatsRecentProjects(t *testing.T) {
	projects := make([]ProjectWithTasks, 0, 7)
	for _, title := range []string{"P1", "P2", "P3", "P4", "P5", "P6", "P7"} {
		projects = append(projects, ProjectWithTasks{Project: newProject(title, models.ProjectPlanning)})
	}

	stats := BuildWorkspaceStats(projects, statsNow)

	require.Len(t, stats.RecentProjects, 5)
	for i, expected := range []string{"P1", "P2", "P3", "P4", "P5"} {
		assert.Equal(t, expected, stats.RecentProjects[i].Title)
	}
}

func TestBuildWorkspaceStatsEmptyWorkspace(t *testing.T) {
	stats := BuildWorkspaceStats(nil, statsNow)

	assert.Equal(t, []int{0, 0, 0, 0, 0, 0}, stats.Stats)
	assert.Empty(t, stats.UpcomingTasks)
	assert.Empty(t, stats.RecentProjects)
	require.Len(t, stats.TaskTrendsData, 7)
	for _, bucket := range stats.TaskTrendsData {
		assert.Zero(t, bucket.Completed+bucket.ToDo+bucket.InProgress)
	}
}
