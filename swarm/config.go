// config.go

package swarm

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/SMerrony/tello"
)

// Config is the on-disk description of a swarm: one entry per drone plus
// the shared timeouts to build each Drone with.
type Config struct {
	Drones []DroneConfig `yaml:"drones"`

	RetryCount       int           `yaml:"retryCount"`
	ResponseTimeout  time.Duration `yaml:"responseTimeout"`
	TakeoffTimeout   time.Duration `yaml:"takeoffTimeout"`
}

// DroneConfig is one member of a Config.
type DroneConfig struct {
	IP        string `yaml:"ip"`
	VideoPort int    `yaml:"videoPort"`
}

// LoadConfig reads a YAML swarm description from path and builds a Swarm
// from it, constructing a Drone for every member; it does not call Connect
// on them.
func LoadConfig(path string) (*Swarm, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("swarm: reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("swarm: parsing config %s: %w", path, err)
	}
	if len(cfg.Drones) == 0 {
		return nil, fmt.Errorf("swarm: config %s lists no drones", path)
	}

	drones := make([]*tello.Drone, 0, len(cfg.Drones))
	for _, dc := range cfg.Drones {
		opts := []tello.DroneOption{}
		if cfg.RetryCount > 0 {
			opts = append(opts, tello.WithRetryCount(cfg.RetryCount))
		}
		if cfg.ResponseTimeout > 0 {
			opts = append(opts, tello.WithResponseTimeout(cfg.ResponseTimeout))
		}
		if cfg.TakeoffTimeout > 0 {
			opts = append(opts, tello.WithTakeoffTimeout(cfg.TakeoffTimeout))
		}
		if dc.VideoPort > 0 {
			opts = append(opts, tello.WithVideoPort(dc.VideoPort))
		}

		d, err := tello.NewDrone(dc.IP, opts...)
		if err != nil {
			return nil, err
		}
		drones = append(drones, d)
	}

	return New(drones), nil
}
