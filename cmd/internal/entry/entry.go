package entry

import (
	"context"
	"strings"
	"sync"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/args"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/collections"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/data"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/hcl"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/landingzone"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/landingzone/aws"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/landingzone/azure"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/landingzone/gcp"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/lzerrors"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/regexes"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/strutil"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/telemetry"
	"github.com/hashicorp/hcl2/hclwrite"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

var clouds = map[string]landingzone.Cloud{
	args.CloudGcp:   gcp.LandingZone{},
	args.CloudAws:   aws.LandingZone{},
	args.CloudAzure: azure.LandingZone{},
}

// CloudFor returns the landing zone builder of the named cloud.
func CloudFor(name string) (landingzone.Cloud, error) {
	cloud, ok := clouds[name]
	if !ok {
		return nil, lzerrors.NewConfigurationError("cloud", "%q is not a supported cloud, expected one of %s", name, strings.Join(args.Clouds, ", "))
	}
	return cloud, nil
}

// Describe reads the configuration from the arguments once and composes the landing zone graph.
func Describe(ctx context.Context, arguments args.Arguments) (*landingzone.Zone, *landingzone.Result, error) {
	config := arguments.OrgConfig()

	cloud, err := CloudFor(config.Cloud)
	if err != nil {
		if validationErr := config.Validate(); validationErr != nil {
			return nil, nil, validationErr
		}
		return nil, nil, err
	}

	zone := landingzone.NewZone(config, landingzone.Options{
		Backend:         arguments.BackendBlock,
		ProviderVersion: arguments.ProviderVersion,
	})

	result, err := landingzone.Compose(ctx, cloud, zone)
	if err != nil {
		return nil, nil, err
	}

	return zone, result, nil
}

// Entry takes the arguments, describes the landing zone and returns the HCL mapped to file names.
func Entry(ctx context.Context, arguments args.Arguments) (map[string]string, error) {
	zone, _, err := Describe(ctx, arguments)
	if err != nil {
		return nil, err
	}

	_, span := telemetry.Start(ctx, "render")
	defer span.End()

	return ProcessResources(zone.Config.Cloud, zone.Resources)
}

type renderedResource struct {
	resource data.ResourceDetails
	hcl      string
}

// ProcessResources renders every resource to HCL and groups the blocks into one file per component. Blocks
// are written in dependency order, and every file starts with a header naming the component that owns it.
func ProcessResources(cloud string, resources *data.ResourceDetailsCollection) (map[string]string, error) {
	zap.L().Info("Generating HCL")
	defer zap.L().Info("Done Generating HCL")

	ordered, err := resources.Order()
	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	rendered := make([]renderedResource, len(ordered))
	hclErrors := collections.SafeErrorSlice{}

	for i, r := range ordered {
		i, r := i, r
		if r.ToHcl == nil {
			continue
		}

		wg.Add(1)

		go func() {
			defer wg.Done()
			block, err := r.ToHcl()

			if err != nil {
				hclErrors.Append(err)
				return
			}

			block = strutil.UnEscapeDollarInString(block)
			if err := CheckReferences(r, block); err != nil {
				hclErrors.Append(err)
				return
			}

			rendered[i] = renderedResource{resource: r, hcl: block}
		}()
	}

	wg.Wait()
	if err := hclErrors.Join(); err != nil {
		return nil, err
	}

	files := map[string]*strings.Builder{}
	for _, r := range rendered {
		if len(strings.TrimSpace(r.hcl)) == 0 {
			continue
		}

		file, ok := files[r.resource.FileName]
		if !ok {
			file = &strings.Builder{}
			file.Write(hclwrite.Tokens(hcl.WriteFileHeader(cloud, r.resource.Component)).Bytes())
			files[r.resource.FileName] = file
		}

		file.WriteString("\n")
		file.WriteString(r.hcl)
	}

	return lo.MapValues(files, func(value *strings.Builder, key string) string {
		return value.String()
	}), nil
}

// CheckReferences verifies that every resource referenced by the rendered HCL is a declared dependency of the
// resource. A reference without an edge would let Terraform and the graph disagree about ordering.
func CheckReferences(resource data.ResourceDetails, block string) error {
	missing := []string{}
	for _, match := range regexes.TerraformReferenceRegex.FindAllStringSubmatch(block, -1) {
		address := match[1]
		if address == resource.Id {
			continue
		}

		if resource.Dependencies == nil || !resource.Dependencies.Contains(address) {
			missing = append(missing, address)
		}
	}

	if len(missing) != 0 {
		return &lzerrors.DependencyError{Resource: resource.Id, Missing: lo.Uniq(missing)}
	}

	return nil
}
