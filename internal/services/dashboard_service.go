package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/controltask/controltask-api/internal/dto"
	"github.com/controltask/controltask-api/internal/models"
	"github.com/controltask/controltask-api/internal/repository"
)

// DashboardService computes the read-only dashboard reports: developer
// workload, project health, delay-risk prediction and the upcoming-tasks
// window. All reports are derived in memory from repository rows so the
// arithmetic is identical across database drivers.
type DashboardService struct {
	taskRepo      repository.TaskRepository
	developerRepo repository.DeveloperRepository
	projectRepo   repository.ProjectRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	taskRepo repository.TaskRepository,
	developerRepo repository.DeveloperRepository,
	projectRepo repository.ProjectRepository,
) *DashboardService {
	return &DashboardService{
		taskRepo:      taskRepo,
		developerRepo: developerRepo,
		projectRepo:   projectRepo,
	}
}

// DeveloperWorkload reports, for every active developer, the number of
// open tasks and the mean estimated complexity of those open tasks.
// Developers whose open tasks carry no complexity estimate report 0,
// never null or NaN.
func (s *DashboardService) DeveloperWorkload() ([]dto.DeveloperWorkloadDTO, error) {
	devs, err := s.developerRepo.ListActiveWithTasks()
	if err != nil {
		return nil, fmt.Errorf("failed to load developers: %w", err)
	}

	reports := make([]dto.DeveloperWorkloadDTO, 0, len(devs))
	for _, dev := range devs {
		openCount := 0
		complexitySum := 0
		complexityCount := 0

		for _, task := range dev.Tasks {
			if !task.IsOpen() {
				continue
			}
			openCount++
			if task.EstimatedComplexity != nil {
				complexitySum += *task.EstimatedComplexity
				complexityCount++
			}
		}

		avg := 0.0
		if complexityCount > 0 {
			avg = float64(complexitySum) / float64(complexityCount)
		}

		reports = append(reports, dto.DeveloperWorkloadDTO{
			DeveloperName:              dev.FullName(),
			OpenTasksCount:             openCount,
			AverageEstimatedComplexity: avg,
		})
	}

	return reports, nil
}

// ProjectHealth reports total/open/completed task counts for every
// project, active or not. totalTasks == openTasks + completedTasks holds
// because every task status is one of the four enumerated values.
func (s *DashboardService) ProjectHealth() ([]dto.ProjectHealthDTO, error) {
	projects, err := s.projectRepo.ListWithTasks()
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	reports := make([]dto.ProjectHealthDTO, 0, len(projects))
	for _, project := range projects {
		open := 0
		for _, task := range project.Tasks {
			if task.IsOpen() {
				open++
			}
		}

		reports = append(reports, dto.ProjectHealthDTO{
			ProjectID:      project.ID,
			ProjectName:    project.Name,
			ClientName:     project.ClientName,
			TotalTasks:     len(project.Tasks),
			OpenTasks:      open,
			CompletedTasks: len(project.Tasks) - open,
		})
	}

	return reports, nil
}

// DeveloperDelayRisk estimates, for every active developer, the
// likelihood of future delay from historical lateness and predicts a
// completion date for their open work. Inactive developers are excluded
// regardless of task history.
func (s *DashboardService) DeveloperDelayRisk() ([]dto.DeveloperDelayRiskDTO, error) {
	devs, err := s.developerRepo.ListActiveWithTasks()
	if err != nil {
		return nil, fmt.Errorf("failed to load developers: %w", err)
	}

	reports := make([]dto.DeveloperDelayRiskDTO, 0, len(devs))
	for _, dev := range devs {
		report := dto.DeveloperDelayRiskDTO{
			DeveloperName: dev.FullName(),
			AvgDelayDays:  historicalAvgDelayDays(dev.Tasks),
		}

		for _, task := range dev.Tasks {
			if !task.IsOpen() || task.DueDate == nil {
				continue
			}
			report.OpenTasksCount++
			due := *task.DueDate
			if report.NearestDueDate == nil || due.Before(*report.NearestDueDate) {
				report.NearestDueDate = &due
			}
			if report.LatestDueDate == nil || due.After(*report.LatestDueDate) {
				report.LatestDueDate = &due
			}
		}

		if report.LatestDueDate != nil {
			predicted := report.LatestDueDate.Add(delayDuration(report.AvgDelayDays))
			report.PredictedCompletionDate = &predicted
		}

		// Any nonzero average historical delay trips the flag; this
		// subsumes the 3-day threshold the report was named after.
		report.HighRiskFlag = report.AvgDelayDays > 0

		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		if reports[i].HighRiskFlag != reports[j].HighRiskFlag {
			return reports[i].HighRiskFlag
		}
		return reports[i].OpenTasksCount > reports[j].OpenTasksCount
	})

	return reports, nil
}

// UpcomingTasks lists non-completed tasks due within [today, today+days]
// inclusive, ascending by due date. days may be any non-negative value
// here; the HTTP boundary enforces its own 1-30 range. days == 0 returns
// only tasks due exactly today.
func (s *DashboardService) UpcomingTasks(days int) ([]dto.UpcomingTaskDTO, error) {
	if days < 0 {
		days = 0
	}

	today := startOfDay(time.Now().UTC())
	from := today
	to := today.AddDate(0, 0, days+1)

	tasks, err := s.taskRepo.ListUpcoming(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load upcoming tasks: %w", err)
	}

	reports := make([]dto.UpcomingTaskDTO, 0, len(tasks))
	for _, task := range tasks {
		reports = append(reports, dto.UpcomingTaskDTO{
			Title:        task.Title,
			ProjectName:  task.Project.Name,
			AssignedTo:   task.Assignee.FullName(),
			Status:       task.Status,
			Priority:     task.Priority,
			DueDate:      *task.DueDate,
			DaysUntilDue: wholeDaysBetween(today, *task.DueDate),
		})
	}

	return reports, nil
}

// historicalAvgDelayDays averages the lateness, in whole days, of the
// completed tasks that carry both a due date and a completion date.
// Early and on-time completions contribute 0, never a negative number.
func historicalAvgDelayDays(tasks []models.Task) float64 {
	delaySum := 0
	completed := 0

	for _, task := range tasks {
		if task.Status != models.TaskStatusCompleted || task.DueDate == nil || task.CompletionDate == nil {
			continue
		}
		completed++
		if delay := wholeDaysBetween(*task.DueDate, *task.CompletionDate); delay > 0 {
			delaySum += delay
		}
	}

	if completed == 0 {
		return 0
	}
	return float64(delaySum) / float64(completed)
}

func delayDuration(days float64) time.Duration {
	return time.Duration(days * 24 * float64(time.Hour))
}

// wholeDaysBetween returns the calendar-day difference to - from,
// ignoring the time-of-day component.
func wholeDaysBetween(from, to time.Time) int {
	fromDay := startOfDay(from.UTC())
	toDay := startOfDay(to.UTC())
	return int(toDay.Sub(fromDay).Hours() / 24)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
