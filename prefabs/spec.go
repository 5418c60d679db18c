package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec reads and unmarshals a YAML prefab into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Radius float64 `yaml:"radius"`
	Mass   float64 `yaml:"mass"`
}

type PlayerSpec struct {
	Name         string        `yaml:"name"`
	MoveSpeed    float64       `yaml:"move_speed"`
	DashSpeed    float64       `yaml:"dash_speed"`
	DashDuration float64       `yaml:"dash_duration"`
	DashCooldown float64       `yaml:"dash_cooldown"`
	MinY         float64       `yaml:"min_y"`
	Transform    TransformSpec `yaml:"transform"`
	Collider     ColliderSpec  `yaml:"collider"`
}

// Validate rejects tuning the controller cannot run with.
func (s *PlayerSpec) Validate() error {
	if s == nil {
		return fmt.Errorf("prefabs: nil player spec")
	}
	if s.MoveSpeed <= 0 {
		return fmt.Errorf("prefabs: player move_speed must be positive, got %v", s.MoveSpeed)
	}
	if s.DashSpeed <= 0 {
		return fmt.Errorf("prefabs: player dash_speed must be positive, got %v", s.DashSpeed)
	}
	if s.DashDuration <= 0 {
		return fmt.Errorf("prefabs: player dash_duration must be positive, got %v", s.DashDuration)
	}
	if s.DashCooldown < 0 {
		return fmt.Errorf("prefabs: player dash_cooldown must not be negative, got %v", s.DashCooldown)
	}
	return nil
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

type EnemySpec struct {
	Name                 string        `yaml:"name"`
	PatrolSpeed          float64       `yaml:"patrol_speed"`
	CircleRadius         float64       `yaml:"circle_radius"`
	InvestigateSpeed     float64       `yaml:"investigate_speed"`
	ChaseSpeed           float64       `yaml:"chase_speed"`
	NoticeDistance       float64       `yaml:"notice_distance"`
	ChaseDistance        float64       `yaml:"chase_distance"`
	SearchDuration       float64       `yaml:"search_duration"`
	InvestigateTolerance float64       `yaml:"investigate_tolerance"`
	Hook                 string        `yaml:"hook"`
	Transform            TransformSpec `yaml:"transform"`
	Collider             ColliderSpec  `yaml:"collider"`
}

// Validate rejects tuning the behavior machine cannot run with. The notice
// distance must exceed the chase distance or the investigate band collapses
// and that state becomes unreachable.
func (s *EnemySpec) Validate() error {
	if s == nil {
		return fmt.Errorf("prefabs: nil enemy spec")
	}
	if s.ChaseDistance <= 0 {
		return fmt.Errorf("prefabs: enemy chase_distance must be positive, got %v", s.ChaseDistance)
	}
	if s.NoticeDistance <= s.ChaseDistance {
		return fmt.Errorf("prefabs: enemy notice_distance (%v) must be greater than chase_distance (%v)", s.NoticeDistance, s.ChaseDistance)
	}
	if s.SearchDuration <= 0 {
		return fmt.Errorf("prefabs: enemy search_duration must be positive, got %v", s.SearchDuration)
	}
	if s.InvestigateTolerance <= 0 {
		return fmt.Errorf("prefabs: enemy investigate_tolerance must be positive, got %v", s.InvestigateTolerance)
	}
	return nil
}

func LoadEnemySpec() (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}
