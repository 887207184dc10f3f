package args

import (
	"context"
	"errors"
	"strings"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/client"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultConfigFile = "lzterra"
	EnvPrefix         = "lzterra"
)

type Arguments struct {
	ConfigFile   string
	ConfigPath   string
	ConfigSource string
	Verbose      bool
	Version      bool

	Cloud             string
	OrgName           string
	Environments      []string
	BillingAccount    string
	LandingZoneRootId string
	Region            string
	AllowedRegions    []string
	EmailLocalPart    string
	EmailDomain       string
	SecurityEmail     string

	Destination     string
	Console         bool
	OverlayDir      string
	BackendBlock    string
	ProviderVersion string
}

// AddFlags registers the flags shared by every command. Flags can also be set in the configuration file or
// with LZTERRA_ prefixed environment variables, e.g. LZTERRA_ORGNAME.
func AddFlags(flags *pflag.FlagSet, arguments *Arguments) {
	flags.StringVar(&arguments.ConfigFile, "configFile", DefaultConfigFile, "The name of the configuration file to use. Do not include the extension. Defaults to lzterra")
	flags.StringVar(&arguments.ConfigPath, "configPath", ".", "The path of the configuration file to use. Defaults to the current directory")
	flags.StringVar(&arguments.ConfigSource, "configSource", "", "A go-getter URL of a remote directory or file holding the configuration file, e.g. git::https://github.com/acme/platform//landingzone?ref=v1.0.0. Overrides configPath.")
	flags.BoolVar(&arguments.Verbose, "verbose", false, "Enable debug logging")
	flags.BoolVar(&arguments.Version, "version", false, "Print the version")

	flags.StringVar(&arguments.Cloud, "cloud", "", "The cloud to build the landing zone in. One of gcp, aws or azure")
	flags.StringVar(&arguments.OrgName, "orgName", "", "The organization name, used as the prefix of every unit name")
	flags.StringSliceVar(&arguments.Environments, "environments", nil, "The ordered list of environments, e.g. dev,prod. Address ranges are allocated by position")
	flags.StringVar(&arguments.BillingAccount, "billingAccount", "", "The billing account: a GCP billing account id, an Azure billing scope id, or a value recorded against each AWS account")
	flags.StringVar(&arguments.LandingZoneRootId, "landingZoneRootId", "", "The existing parent of the landing zone: a GCP folders/N or organizations/N, an AWS root or OU id, or an Azure management group id")
	flags.StringVar(&arguments.Region, "region", "", "The region (or Azure location) of regional resources. Defaults to us-central1, us-east-1 or eastus")
	flags.StringSliceVar(&arguments.AllowedRegions, "allowedRegions", nil, "The regions workloads may use, enforced by AWS guardrails and Azure policy")
	flags.StringVar(&arguments.EmailLocalPart, "emailLocalPart", "", "AWS only. The local part of the account email addresses, which are built as <local>+<org>-<unit>@<domain>")
	flags.StringVar(&arguments.EmailDomain, "emailDomain", "", "AWS only. The domain of the account email addresses")
	flags.StringVar(&arguments.SecurityEmail, "securityEmail", "", "The address security alerts are sent to. Defaults to security@<org>.com")

	flags.StringVar(&arguments.Destination, "dest", "", "The directory to place the Terraform files in")
	flags.BoolVar(&arguments.Console, "console", false, "Dump Terraform files to the console")
	flags.StringVar(&arguments.OverlayDir, "overlayDir", "", "A directory whose files are copied next to the generated files, e.g. to add a backend configuration")
	flags.StringVar(&arguments.BackendBlock, "terraformBackend", "", "Specifies the backend type to be added to the exported Terraform configuration.")
	flags.StringVar(&arguments.ProviderVersion, "providerVersion", "", "Specifies the version constraint of the cloud provider.")
}

// Complete merges the values from the configuration file and environment variables into any flags that were not
// set on the command line. When a configuration source is set it is fetched first.
func Complete(ctx context.Context, flags *pflag.FlagSet, arguments *Arguments, source client.ConfigSource) error {
	if arguments.ConfigSource != "" {
		dir, err := source.Fetch(ctx, arguments.ConfigSource, arguments.ConfigFile)
		if err != nil {
			return err
		}
		arguments.ConfigPath = dir
	}

	return overrideArgs(flags, arguments.ConfigPath, arguments.ConfigFile)
}

// Inspired by https://github.com/carolynvs/stingoftheviper
// Viper needs manual handling to implement reading settings from env vars, config files, and from the command line
func overrideArgs(flags *pflag.FlagSet, configPath string, configFile string) error {
	v := viper.New()

	// Set the base name of the config file, without the file extension.
	v.SetConfigName(configFile)

	// Set as many paths as you like where viper should look for the
	// config file. We are only looking in the configured directory.
	v.AddConfigPath(configPath)

	// Attempt to read the config file, gracefully ignoring errors
	// caused by a config file not being found. Return an error
	// if we cannot parse the config file.
	if err := v.ReadInConfig(); err != nil {
		// It's okay if there isn't a config file
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	// When we bind flags to environment variables expect that the
	// environment variables are prefixed, e.g. a flag like --orgName
	// binds to an environment variable LZTERRA_ORGNAME. This helps
	// avoid conflicts.
	v.SetEnvPrefix(EnvPrefix)

	// Environment variables can't have dashes in them, so bind them to their equivalent
	// keys with underscores
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Bind to environment variables
	v.AutomaticEnv()

	// Bind the current command's flags to viper
	return bindFlags(flags, v)
}

// Bind each flag to its associated viper configuration (config file and environment variable)
func bindFlags(flags *pflag.FlagSet, v *viper.Viper) error {
	var funcError error = nil

	flags.VisitAll(func(flag *pflag.Flag) {
		if flag.Changed || flag.Name == "configFile" || flag.Name == "configPath" || flag.Name == "configSource" {
			return
		}

		if !v.IsSet(flag.Name) {
			return
		}

		values := []string{v.GetString(flag.Name)}
		if strings.HasSuffix(flag.Value.Type(), "Slice") {
			values = v.GetStringSlice(flag.Name)
		}

		for _, value := range values {
			err := flags.Set(flag.Name, value)
			funcError = errors.Join(funcError, err)
		}
	})

	return funcError
}
