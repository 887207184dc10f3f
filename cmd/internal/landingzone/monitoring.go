package landingzone

import (
	"encoding/json"
	"time"
)

// AlertRule is a threshold alert on a metric of the monitored unit. Each cloud maps the rule to its own
// alerting resource.
type AlertRule struct {
	Name        string
	Description string
	// Metric is the cloud specific metric, e.g. a Cloud Monitoring filter or a CloudWatch metric name
	Metric    string
	Namespace string
	Threshold float64
	Window    time.Duration
}

// MonitoringBinding attaches a dashboard and alert rules to one unit.
type MonitoringBinding struct {
	Target        *Unit
	DashboardName string
	// Dashboard is the cloud specific dashboard definition, serialized to JSON when rendered
	Dashboard  any
	AlertRules []AlertRule
}

// DashboardJson returns the dashboard definition as compact JSON.
func (m MonitoringBinding) DashboardJson() (string, error) {
	dashboard, err := json.Marshal(m.Dashboard)
	if err != nil {
		return "", err
	}
	return string(dashboard), nil
}
