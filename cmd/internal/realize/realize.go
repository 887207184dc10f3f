package realize

import (
	"context"
	"strings"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/data"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/hash"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/landingzone"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/lzerrors"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/telemetry"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency matches the default parallelism of terraform apply.
const DefaultConcurrency = 10

// Preview is the result of simulating the realization of a landing zone.
type Preview struct {
	// Waves are the resource addresses realized together, in the order the waves were realized
	Waves [][]string `json:"waves" yaml:"waves"`
	// Outputs are the resolved aggregate outputs, keyed by output name and then logical name
	Outputs map[string]map[string]string `json:"outputs" yaml:"outputs"`
}

// Realizer simulates realizing the dependency graph the way Terraform would: every resource is realized only
// once all of its dependencies have been, and resources with no dependencies between them are realized
// concurrently. Generated attributes are replaced by values derived from the resource address, so a preview
// of an unchanged configuration is always the same.
type Realizer struct {
	Concurrency int
}

// Realize realizes every resource in the collection, recording the generated attributes in state, and
// resolves the aggregate outputs against that state.
func (r Realizer) Realize(ctx context.Context, resources *data.ResourceDetailsCollection, result *landingzone.Result, state *data.State) (*Preview, error) {
	ctx, span := telemetry.Start(ctx, "realize")
	defer span.End()

	waves, err := resources.Waves()
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("waves", len(waves)))

	preview := &Preview{
		Waves:   make([][]string, 0, len(waves)),
		Outputs: map[string]map[string]string{},
	}

	for i, wave := range waves {
		zap.L().Debug("Realizing wave", zap.Int("wave", i), zap.Int("resources", len(wave)))

		if err := r.realizeWave(ctx, wave, state); err != nil {
			return nil, err
		}

		preview.Waves = append(preview.Waves, lo.Map(wave, func(item data.ResourceDetails, index int) string {
			return item.Id
		}))
	}

	if result == nil {
		return preview, nil
	}

	names := maps.Keys(result.Outputs)
	slices.Sort(names)
	for _, name := range names {
		resolved, err := result.Outputs[name].Resolve(state)
		if err != nil {
			return nil, err
		}
		preview.Outputs[name] = resolved
	}

	return preview, nil
}

func (r Realizer) realizeWave(ctx context.Context, wave []data.ResourceDetails, state *data.State) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency())

	for _, resource := range wave {
		resource := resource
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			return realizeResource(resource, state)
		})
	}

	return g.Wait()
}

func (r Realizer) concurrency() int {
	if r.Concurrency <= 0 {
		return DefaultConcurrency
	}
	return r.Concurrency
}

// realizeResource records the attributes of a single resource. A resource whose dependencies have not been
// realized is a defect in the graph, and is reported as a DependencyError.
func realizeResource(resource data.ResourceDetails, state *data.State) error {
	missing := lo.Filter(resource.DependencyList(), func(item string, index int) bool {
		return !state.IsRealized(item)
	})

	if len(missing) != 0 {
		return &lzerrors.DependencyError{Resource: resource.Id, Missing: missing}
	}

	state.Set(resource.Id, lo.SliceToMap(resource.Attributes, func(item string) (string, string) {
		return item, FakeValue(resource, item)
	}))

	return nil
}

// FakeValue returns a deterministic value shaped like the attribute Terraform would generate for the
// resource, e.g. a 12 digit number for an AWS account id or folders/<number> for a GCP folder name.
func FakeValue(resource data.ResourceDetails, attribute string) string {
	seed := resource.Id + "." + attribute

	switch {
	case attribute == "number":
		return hash.StableNumber(seed, 12)
	case attribute == "arn":
		return "arn:aws:" + service(resource.ResourceType) + "::" + hash.StableNumber(resource.Id, 12) + ":" + resource.Id
	case resource.ResourceType == "aws_organizations_account" && attribute == "id":
		return hash.StableNumber(seed, 12)
	case resource.ResourceType == "aws_organizations_organizational_unit" && attribute == "id":
		return "ou-" + hash.Sha256Hash(seed)[:4] + "-" + hash.Sha256Hash(seed)[4:12]
	case resource.ResourceType == "google_folder" && (attribute == "id" || attribute == "name"):
		return "folders/" + hash.StableNumber(resource.Id, 12)
	case strings.HasPrefix(resource.ResourceType, "azurerm_") && attribute == "id":
		return "/fake/" + resource.ResourceType + "/" + hash.StableGuid(seed)
	default:
		return hash.StableGuid(seed)
	}
}

// service returns the AWS service of a resource type, e.g. iam for aws_iam_role.
func service(resourceType string) string {
	parts := strings.SplitN(resourceType, "_", 3)
	if len(parts) < 2 {
		return resourceType
	}
	return parts[1]
}
