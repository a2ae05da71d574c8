package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// WallSpec is one static rectangle of the container: a bucket wall or, when
// Barrier is set, an out-of-bounds barrier that costs a strike on contact.
type WallSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Barrier bool    `yaml:"barrier"`
}

// BucketSpec is the full container layout.
type BucketSpec struct {
	Walls []WallSpec `yaml:"walls"`
}

// LoadBucket reads and parses bucket.yaml.
func LoadBucket() (*BucketSpec, error) {
	data, err := Load("bucket.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load bucket: %w", err)
	}
	var spec BucketSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: parse bucket: %w", err)
	}
	return &spec, nil
}

// BallSpec is the standard dynamic-body tuning for dropped balls.
type BallSpec struct {
	Restitution  float64 `yaml:"restitution"`
	Friction     float64 `yaml:"friction"`
	GravityScale float64 `yaml:"gravity_scale"`
	Mass         float64 `yaml:"mass"`
}

// LoadBall reads and parses ball.yaml.
func LoadBall() (*BallSpec, error) {
	data, err := Load("ball.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load ball: %w", err)
	}
	var spec BallSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: parse ball: %w", err)
	}
	return &spec, nil
}
