package gcp

import (
	"context"
	"fmt"
	"time"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/data"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/landingzone"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/model/terraform"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/naming"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/sanitizer"
)

const (
	cpuFilter        = `resource.type="gce_instance" AND metric.type="compute.googleapis.com/instance/cpu/utilization"`
	logRetentionDays = 90
)

// DefaultMonitoring is the dashboard and CPU alert attached to the shared services project.
func DefaultMonitoring(zone *landingzone.Zone, target *landingzone.Unit) landingzone.MonitoringBinding {
	return landingzone.MonitoringBinding{
		Target:        target,
		DashboardName: zone.Config.OrgName + " Multi-Cloud Dashboard",
		Dashboard: map[string]any{
			"displayName": zone.Config.OrgName + " Multi-Cloud Dashboard",
			"mosaicLayout": map[string]any{
				"columns": 6,
				"tiles": []any{
					map[string]any{
						"width":  6,
						"height": 4,
						"widget": map[string]any{
							"title": "CPU Utilization",
							"xyChart": map[string]any{
								"dataSets": []any{
									map[string]any{
										"timeSeriesQuery": map[string]any{
											"timeSeriesFilter": map[string]any{
												"filter": cpuFilter,
												"aggregation": map[string]any{
													"alignmentPeriod":  "300s",
													"perSeriesAligner": "ALIGN_MEAN",
												},
											},
										},
									},
								},
							},
						},
					},
				},
			},
		},
		AlertRules: []landingzone.AlertRule{{
			Name:        "High CPU Usage",
			Description: "CPU usage is above 80%",
			Metric:      cpuFilter,
			Threshold:   0.8,
			Window:      5 * time.Minute,
		}},
	}
}

// Monitoring attaches log retention, a log sink, the alert policies and the dashboard to the target project.
func (l LandingZone) Monitoring(ctx context.Context, zone *landingzone.Zone, binding landingzone.MonitoringBinding) error {
	unit := binding.Target
	component := zone.Component("monitoring")
	prefix := naming.ResourceName(unit.LogicalName)

	monitoringApi := service(component, unit, "monitoring.googleapis.com", "monitoring", false)
	loggingApi := service(component, unit, "logging.googleapis.com", "logging", false)

	bucket := component.Resource(landingzone.Resource{
		Type: "google_logging_project_bucket_config",
		Name: prefix + "_default",
		Body: terraform.TerraformGoogleLoggingProjectBucketConfig{
			Type:          "google_logging_project_bucket_config",
			Name:          prefix + "_default",
			Project:       unit.Id.Expression(),
			Location:      "global",
			BucketId:      "_Default",
			RetentionDays: logRetentionDays,
		},
		References: []data.Output{unit.Id},
		DependsOn:  []string{loggingApi},
	})

	destination := data.Interpolate("logging.googleapis.com/projects/", unit.Id, "/locations/global/buckets/_Default")
	component.Resource(landingzone.Resource{
		Type: "google_logging_project_sink",
		Name: prefix,
		Body: terraform.TerraformGoogleLoggingProjectSink{
			Type:                 "google_logging_project_sink",
			Name:                 prefix,
			ResourceName:         zone.Config.OrgName + "-project-sink",
			Project:              unit.Id.Expression(),
			Destination:          destination.Expression(),
			Filter:               "severity >= INFO",
			UniqueWriterIdentity: true,
		},
		References: []data.Output{unit.Id, destination},
		DependsOn:  []string{bucket},
	})

	for _, rule := range binding.AlertRules {
		name := prefix + "_" + sanitizer.SanitizeName(rule.Name)
		window := fmt.Sprintf("%ds", int(rule.Window.Seconds()))

		component.Resource(landingzone.Resource{
			Type: "google_monitoring_alert_policy",
			Name: name,
			Body: terraform.TerraformGoogleMonitoringAlertPolicy{
				Type:        "google_monitoring_alert_policy",
				Name:        name,
				Project:     unit.Id.Expression(),
				DisplayName: rule.Name,
				Combiner:    "OR",
				Conditions: []terraform.TerraformGoogleAlertPolicyCondition{{
					DisplayName: rule.Description,
					ConditionThreshold: terraform.TerraformGoogleAlertConditionThreshold{
						Filter:         rule.Metric,
						Comparison:     "COMPARISON_GT",
						ThresholdValue: rule.Threshold,
						Duration:       window,
						Aggregations: []terraform.TerraformGoogleAggregation{{
							AlignmentPeriod:    window,
							PerSeriesAligner:   "ALIGN_MEAN",
							CrossSeriesReducer: "REDUCE_MEAN",
							GroupByFields:      []string{"resource.label.instance_id"},
						}},
					},
				}},
				AlertStrategy: &terraform.TerraformGoogleAlertStrategy{
					AutoClose: "1800s",
				},
			},
			References: []data.Output{unit.Id},
			DependsOn:  []string{monitoringApi},
		})
	}

	dashboard, err := binding.DashboardJson()
	if err != nil {
		return err
	}

	component.Resource(landingzone.Resource{
		Type: "google_monitoring_dashboard",
		Name: prefix,
		Body: terraform.TerraformGoogleMonitoringDashboard{
			Type:          "google_monitoring_dashboard",
			Name:          prefix,
			Project:       unit.Id.Expression(),
			DashboardJson: dashboard,
		},
		References: []data.Output{unit.Id},
		DependsOn:  []string{monitoringApi},
	})

	return component.Err()
}
