package settings

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/klothoplatform/farmcreator/pkg/deadlinecloud"
	"github.com/klothoplatform/farmcreator/pkg/provision"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/tidwall/jsonc"
	"go.uber.org/multierr"
)

const (
	DefaultPath = "settings/settings.json"
	EnvPrefix   = "FARM_CREATOR"
)

// Settings is the settings document shared by the listener and the CLI.
type Settings struct {
	ListenerHost string `mapstructure:"listener_host" json:"listener_host"`
	ListenerPort int    `mapstructure:"listener_port" json:"listener_port"`

	StudioID string `mapstructure:"studio_id" json:"studio_id"`
	Region   string `mapstructure:"region" json:"region"`
	Profile  string `mapstructure:"profile" json:"profile"`

	MaxWorkerCount        int                                  `mapstructure:"max_worker_count" json:"max_worker_count"`
	JobRunAsUser          *deadlinecloud.JobRunAsUser          `mapstructure:"job_run_as_user" json:"job_run_as_user"`
	JobAttachmentSettings *deadlinecloud.JobAttachmentSettings `mapstructure:"job_attachment_settings" json:"job_attachment_settings"`

	FleetConfigurationPath string `mapstructure:"fleet_configuration_path" json:"fleet_configuration_path"`
	TrustPolicyPath        string `mapstructure:"trust_policy_path" json:"trust_policy_path"`
	WorkerPermissionsPath  string `mapstructure:"worker_permissions_path" json:"worker_permissions_path"`

	MaxConcurrentRuns int                   `mapstructure:"max_concurrent_runs" json:"max_concurrent_runs"`
	QueuePoll         provision.RetryPolicy `mapstructure:"queue_poll" json:"queue_poll"`
	FleetCreate       provision.RetryPolicy `mapstructure:"fleet_create" json:"fleet_create"`
	HTTPTimeout       time.Duration         `mapstructure:"http_timeout" json:"http_timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("listener_host", "")
	v.SetDefault("listener_port", 0)
	v.SetDefault("studio_id", "")
	v.SetDefault("region", "")
	v.SetDefault("profile", "")
	v.SetDefault("max_worker_count", 1)
	v.SetDefault("fleet_configuration_path", provision.DefaultFleetConfigurationPath)
	v.SetDefault("trust_policy_path", provision.DefaultTrustPolicyPath)
	v.SetDefault("worker_permissions_path", provision.DefaultWorkerPermissionsPath)
	v.SetDefault("max_concurrent_runs", 1)
	v.SetDefault("http_timeout", 30*time.Second)

	retryDefaults := func(key string, p provision.RetryPolicy) {
		v.SetDefault(key+".attempts", p.Attempts)
		v.SetDefault(key+".delay", p.Delay)
		v.SetDefault(key+".jitter", p.Jitter)
		v.SetDefault(key+".delay_first", p.DelayFirst)
	}
	retryDefaults("queue_poll", provision.DefaultQueuePoll)
	retryDefaults("fleet_create", provision.DefaultFleetCreate)
}

// Load reads the settings document at path, which may contain comments. An
// empty path loads only the defaults. FARM_CREATOR_<KEY> environment variables
// override the document, e.g. FARM_CREATOR_STUDIO_ID or FARM_CREATOR_FLEET_CREATE_DELAY.
func Load(fs afero.Fs, path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		raw, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't read settings %s", path)
		}
		v.SetConfigType("json")
		if err := v.ReadConfig(bytes.NewReader(jsonc.ToJSON(raw))); err != nil {
			return nil, errors.Wrapf(err, "couldn't interpret settings %s as JSON", path)
		}
	}

	var s Settings
	err := v.Unmarshal(&s, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't decode settings %s", path)
	}
	return &s, nil
}

// EffectiveRegion is the configured region, or else the region prefix of the studio ID.
func (s *Settings) EffectiveRegion() string {
	if s.Region != "" {
		return s.Region
	}
	return deadlinecloud.StudioRegion(s.StudioID)
}

func (s *Settings) ListenAddr() string {
	return fmt.Sprintf("%s:%d", s.ListenerHost, s.ListenerPort)
}

// Validate checks the settings. The listener additionally needs its address
// and a studio.
func (s *Settings) Validate(listener bool) error {
	var errs error
	if listener {
		if s.ListenerHost == "" {
			errs = multierr.Append(errs, errors.New("listener_host is required"))
		}
		if s.ListenerPort <= 0 || s.ListenerPort > 65535 {
			errs = multierr.Append(errs, fmt.Errorf("listener_port %d is out of range", s.ListenerPort))
		}
		if s.StudioID == "" {
			errs = multierr.Append(errs, errors.New("studio_id is required"))
		}
		if s.MaxConcurrentRuns < 1 {
			errs = multierr.Append(errs, fmt.Errorf("max_concurrent_runs must be at least 1, got %d", s.MaxConcurrentRuns))
		}
	}
	if s.MaxWorkerCount < 0 {
		errs = multierr.Append(errs, fmt.Errorf("max_worker_count must not be negative, got %d", s.MaxWorkerCount))
	}
	if s.JobRunAsUser != nil {
		if _, err := deadlinecloud.NormalizeRunAs(s.JobRunAsUser.RunAs); err != nil {
			errs = multierr.Append(errs, errors.Wrap(err, "job_run_as_user.runAs"))
		}
	}
	for key, p := range map[string]provision.RetryPolicy{"queue_poll": s.QueuePoll, "fleet_create": s.FleetCreate} {
		if p.Delay < 0 || p.Jitter < 0 {
			errs = multierr.Append(errs, fmt.Errorf("%s delays must not be negative", key))
		}
	}
	return errs
}
