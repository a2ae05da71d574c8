package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"

	"github.com/milk9111/bingle/common"
	"github.com/milk9111/bingle/ecs/component"
	"github.com/milk9111/bingle/prefabs"
)

const dropTableScript = "drop_table.tengo"

// DropTable maps dropper rolls to ball ranks. The mapping lives in a tengo
// script under prefabs/scripts so the droppable range and roll-to-rank rule
// can be tuned without recompiling; a missing or broken script falls back
// to the built-in rule.
type DropTable struct {
	script   *tengo.Script
	rangeMax int
}

// LoadDropTable compiles the drop table script. The returned table is
// always usable; script problems are logged and degrade to the fallback.
func LoadDropTable() *DropTable {
	t := &DropTable{rangeMax: common.DroppableRange}
	src, err := prefabs.LoadScript(dropTableScript)
	if err != nil {
		log.Printf("droptable: no script, using built-in table: %v", err)
		return t
	}
	script := tengo.NewScript(src)
	if err := script.Add("roll", 0); err != nil {
		log.Printf("droptable: %v", err)
		return t
	}
	rangeMax, err := scriptRange(script)
	if err != nil {
		log.Printf("droptable: %v", err)
		return t
	}
	t.script = script
	t.rangeMax = rangeMax
	return t
}

func scriptRange(script *tengo.Script) (int, error) {
	compiled, err := script.Run()
	if err != nil {
		return 0, fmt.Errorf("run drop table: %w", err)
	}
	rangeMax := compiled.Get("droppable_range").Int()
	if rangeMax < 1 {
		return 0, fmt.Errorf("drop table: droppable_range %d out of range", rangeMax)
	}
	return rangeMax, nil
}

// Range returns the inclusive upper bound of droppable rolls.
func (t *DropTable) Range() int {
	return t.rangeMax
}

// RankForRoll maps a roll to a rank. Rolls above five map to the Special
// rank, unreachable while the range stays at or below five.
func (t *DropTable) RankForRoll(roll int) component.Rank {
	if t.script != nil {
		if err := t.script.Add("roll", roll); err == nil {
			if compiled, err := t.script.Run(); err == nil {
				level := compiled.Get("level").Int()
				if level < 0 {
					return component.SpecialRank()
				}
				return component.SimpleRank(level)
			} else {
				log.Printf("droptable: run: %v", err)
			}
		}
	}
	if roll > 5 {
		return component.SpecialRank()
	}
	return component.SimpleRank(roll)
}

// Roll picks the next droppable rank using the RNG collaborator.
func (t *DropTable) Roll(rng *common.RNG) component.Rank {
	return t.RankForRoll(rng.IntRange(1, t.rangeMax))
}
