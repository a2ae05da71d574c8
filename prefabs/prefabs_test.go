package prefabs

import "testing"

func TestLoadFallsBackToEmbedded(t *testing.T) {
	// tests run outside the game's working directory, so the disk path
	// misses and the embedded copy must serve
	cases := []string{"bucket.yaml", "ball.yaml", "prefabs/bucket.yaml"}
	for _, name := range cases {
		t.Run(name, func(t *testing.T) {
			data, err := Load(name)
			if err != nil {
				t.Fatalf("load %s: %v", name, err)
			}
			if len(data) == 0 {
				t.Fatalf("load %s: empty prefab", name)
			}
		})
	}
}

func TestLoadScriptFallsBackToEmbedded(t *testing.T) {
	for _, name := range []string{"drop_table.tengo", "scripts/drop_table.tengo", "prefabs/scripts/drop_table.tengo"} {
		t.Run(name, func(t *testing.T) {
			data, err := LoadScript(name)
			if err != nil {
				t.Fatalf("load script %s: %v", name, err)
			}
			if len(data) == 0 {
				t.Fatalf("load script %s: empty script", name)
			}
		})
	}
}

func TestLoadBucketLayout(t *testing.T) {
	spec, err := LoadBucket()
	if err != nil {
		t.Fatalf("load bucket: %v", err)
	}
	if len(spec.Walls) != 7 {
		t.Fatalf("expected 7 container rectangles, got %d", len(spec.Walls))
	}
	barriers := 0
	for _, wall := range spec.Walls {
		if wall.Width <= 0 || wall.Height <= 0 {
			t.Fatalf("degenerate wall in prefab: %+v", wall)
		}
		if wall.Barrier {
			barriers++
		}
	}
	if barriers != 4 {
		t.Fatalf("expected 4 barriers, got %d", barriers)
	}
}

func TestLoadBallTuning(t *testing.T) {
	spec, err := LoadBall()
	if err != nil {
		t.Fatalf("load ball: %v", err)
	}
	if spec.Restitution != 0.2 {
		t.Fatalf("restitution: got %v", spec.Restitution)
	}
	if spec.Friction != 0 {
		t.Fatalf("friction: got %v", spec.Friction)
	}
	if spec.GravityScale != 4 {
		t.Fatalf("gravity scale: got %v", spec.GravityScale)
	}
	if spec.Mass != 1 {
		t.Fatalf("mass: got %v", spec.Mass)
	}
}
