package aws

import (
	"context"
	"time"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/data"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/landingzone"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/model/terraform"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/naming"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/sanitizer"
)

const alarmEvaluationPeriods = 2

// DefaultMonitoring is the overview dashboard and error rate alarm attached to the shared services account.
func DefaultMonitoring(zone *landingzone.Zone, target *landingzone.Unit) landingzone.MonitoringBinding {
	return landingzone.MonitoringBinding{
		Target:        target,
		DashboardName: zone.Config.OrgName + "-overview",
		Dashboard: map[string]any{
			"widgets": []any{
				map[string]any{
					"type":   "metric",
					"x":      0,
					"y":      0,
					"width":  12,
					"height": 6,
					"properties": map[string]any{
						"metrics": []any{
							[]any{"AWS/EC2", "CPUUtilization"},
						},
						"period": 300,
						"stat":   "Average",
						"region": zone.Config.Region,
						"title":  "EC2 Instance CPU",
					},
				},
			},
		},
		AlertRules: []landingzone.AlertRule{{
			Name:        "high-error-rate",
			Description: "This metric monitors error rate",
			Metric:      "ErrorRate",
			Namespace:   "AWS/Lambda",
			Threshold:   5,
			Window:      5 * time.Minute,
		}},
	}
}

// Monitoring describes the CloudWatch dashboard, the alerts topic and an alarm per alert rule inside the
// target account. Alarms notify the alerts topic.
func (l LandingZone) Monitoring(ctx context.Context, zone *landingzone.Zone, binding landingzone.MonitoringBinding) error {
	unit := binding.Target
	component := zone.Component("monitoring")
	org := zone.Config.OrgName

	dashboard, err := binding.DashboardJson()
	if err != nil {
		return err
	}

	component.Resource(landingzone.Resource{
		Type: "aws_cloudwatch_dashboard",
		Name: "main",
		Body: terraform.TerraformAwsCloudwatchDashboard{
			Type:          "aws_cloudwatch_dashboard",
			Name:          "main",
			DashboardName: binding.DashboardName,
			DashboardBody: dashboard,
		},
		Provider: unit.Provider,
	})

	topic := component.Resource(landingzone.Resource{
		Type: "aws_sns_topic",
		Name: "alerts",
		Body: terraform.TerraformAwsSnsTopic{
			Type:         "aws_sns_topic",
			Name:         "alerts",
			ResourceName: org + "-alerts",
			Tags:         tags(zone, naming.SharedServices, nil),
		},
		Provider:   unit.Provider,
		Attributes: []string{"arn"},
	})
	topicArn := data.Reference(topic, "arn")

	for _, rule := range binding.AlertRules {
		name := sanitizer.SanitizeName(rule.Name)
		component.Resource(landingzone.Resource{
			Type: "aws_cloudwatch_metric_alarm",
			Name: name,
			Body: terraform.TerraformAwsCloudwatchMetricAlarm{
				Type:               "aws_cloudwatch_metric_alarm",
				Name:               name,
				AlarmName:          org + "-" + rule.Name,
				AlarmDescription:   rule.Description,
				ComparisonOperator: "GreaterThanThreshold",
				EvaluationPeriods:  alarmEvaluationPeriods,
				MetricName:         rule.Metric,
				Namespace:          rule.Namespace,
				Period:             int(rule.Window.Seconds()),
				Statistic:          "Average",
				Threshold:          rule.Threshold,
				AlarmActions:       []string{topicArn.Expression()},
			},
			References: []data.Output{topicArn},
			Provider:   unit.Provider,
		})
	}

	return component.Err()
}
