package azure

import (
	"context"
	"fmt"
	"time"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/data"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/landingzone"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/model/terraform"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/naming"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/sanitizer"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/strutil"
)

const (
	virtualMachinesNamespace = "Microsoft.Compute/virtualMachines"
	logRetentionDays         = 90
)

// DefaultMonitoring is the CPU alert attached to the shared services subscription. Azure dashboards are
// portal resources, so the binding has no dashboard definition.
func DefaultMonitoring(zone *landingzone.Zone, target *landingzone.Unit) landingzone.MonitoringBinding {
	return landingzone.MonitoringBinding{
		Target: target,
		AlertRules: []landingzone.AlertRule{{
			Name:        "high-cpu-usage",
			Description: "Alert when CPU usage is high",
			Metric:      "Percentage CPU",
			Namespace:   virtualMachinesNamespace,
			Threshold:   80,
			Window:      5 * time.Minute,
		}},
	}
}

// isoDuration formats a whole number of minutes as an ISO 8601 duration, e.g. PT5M.
func isoDuration(duration time.Duration) string {
	return fmt.Sprintf("PT%dM", int(duration.Minutes()))
}

// Monitoring describes a Log Analytics workspace, Application Insights, an action group and a metric alert
// per alert rule inside the target subscription.
func (l LandingZone) Monitoring(ctx context.Context, zone *landingzone.Zone, binding landingzone.MonitoringBinding) error {
	unit := binding.Target
	component := zone.Component("monitoring")
	org := naming.OrgSlug(zone.Config.OrgName)

	workspace := component.Resource(landingzone.Resource{
		Type: "azurerm_log_analytics_workspace",
		Name: "main",
		Body: terraform.TerraformAzureLogAnalyticsWorkspace{
			Type:              "azurerm_log_analytics_workspace",
			Name:              "main",
			ResourceName:      org + "-monitoring-logs",
			Location:          zone.Config.Region,
			ResourceGroupName: unit.Scope.Expression(),
			Sku:               "PerGB2018",
			RetentionInDays:   logRetentionDays,
			Tags:              tags(zone, unit.LogicalName, nil),
		},
		References: []data.Output{unit.Scope},
		Provider:   unit.Provider,
	})
	workspaceId := data.Reference(workspace, "id")

	component.Resource(landingzone.Resource{
		Type: "azurerm_application_insights",
		Name: "main",
		Body: terraform.TerraformAzureApplicationInsights{
			Type:              "azurerm_application_insights",
			Name:              "main",
			ResourceName:      org + "-monitoring-insights",
			Location:          zone.Config.Region,
			ResourceGroupName: unit.Scope.Expression(),
			ApplicationType:   "web",
			WorkspaceId:       workspaceId.Expression(),
		},
		References: []data.Output{unit.Scope, workspaceId},
		Provider:   unit.Provider,
	})

	actionGroup := component.Resource(landingzone.Resource{
		Type: "azurerm_monitor_action_group",
		Name: "alerts",
		Body: terraform.TerraformAzureMonitorActionGroup{
			Type:              "azurerm_monitor_action_group",
			Name:              "alerts",
			ResourceName:      org + "-alerts",
			ResourceGroupName: unit.Scope.Expression(),
			ShortName:         "alerts",
			EmailReceiver: []terraform.TerraformAzureEmailReceiver{{
				Name:         "security",
				EmailAddress: zone.Config.SecurityEmail,
			}},
		},
		References: []data.Output{unit.Scope},
		Provider:   unit.Provider,
	})
	actionGroupId := data.Reference(actionGroup, "id")

	scope := data.Interpolate("/subscriptions/", unit.Id)

	for _, rule := range binding.AlertRules {
		name := sanitizer.SanitizeName(rule.Name)
		window := isoDuration(rule.Window)

		component.Resource(landingzone.Resource{
			Type: "azurerm_monitor_metric_alert",
			Name: name,
			Body: terraform.TerraformAzureMonitorMetricAlert{
				Type:                   "azurerm_monitor_metric_alert",
				Name:                   name,
				ResourceName:           rule.Name,
				ResourceGroupName:      unit.Scope.Expression(),
				Scopes:                 []string{scope.Expression()},
				Description:            rule.Description,
				TargetResourceType:     strutil.StrPointer(rule.Namespace),
				TargetResourceLocation: strutil.StrPointer(zone.Config.Region),
				Frequency:              window,
				WindowSize:             window,
				Criteria: terraform.TerraformAzureMetricAlertCriteria{
					MetricNamespace: rule.Namespace,
					MetricName:      rule.Metric,
					Aggregation:     "Average",
					Operator:        "GreaterThan",
					Threshold:       rule.Threshold,
				},
				Action: terraform.TerraformAzureMetricAlertAction{
					ActionGroupId: actionGroupId.Expression(),
				},
			},
			References: []data.Output{unit.Scope, scope, actionGroupId},
			Provider:   unit.Provider,
		})
	}

	return component.Err()
}
