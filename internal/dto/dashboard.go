package dto

import "time"

// DeveloperWorkloadDTO reports a developer's open-task load
type DeveloperWorkloadDTO struct {
	DeveloperName              string  `json:"developerName"`
	OpenTasksCount             int     `json:"openTasksCount"`
	AverageEstimatedComplexity float64 `json:"averageEstimatedComplexity"`
}

// ProjectHealthDTO reports per-project task counts
type ProjectHealthDTO struct {
	ProjectID      uint64 `json:"projectId"`
	ProjectName    string `json:"projectName"`
	ClientName     string `json:"clientName"`
	TotalTasks     int    `json:"totalTasks"`
	OpenTasks      int    `json:"openTasks"`
	CompletedTasks int    `json:"completedTasks"`
}

// DeveloperDelayRiskDTO reports a developer's predicted delay risk
type DeveloperDelayRiskDTO struct {
	DeveloperName           string     `json:"developerName"`
	OpenTasksCount          int        `json:"openTasksCount"`
	AvgDelayDays            float64    `json:"avgDelayDays"`
	NearestDueDate          *time.Time `json:"nearestDueDate"`
	LatestDueDate           *time.Time `json:"latestDueDate"`
	PredictedCompletionDate *time.Time `json:"predictedCompletionDate"`
	HighRiskFlag            bool       `json:"highRiskFlag"`
}
