// Profiling:
// go build ./tools/simbench
// go tool pprof -http=":8000" -nodefraction=0.001 ./simbench mem.pprof

package main

import (
	"flag"
	"fmt"

	"github.com/pkg/profile"

	"strategos-server/internal/domain"
	"strategos-server/internal/systems"
	"strategos-server/pkg/gamedata"
	"strategos-server/pkg/logger"
)

func main() {
	var rounds, unitsPerRound int
	var mode string
	flag.IntVar(&rounds, "rounds", 50, "simulation rounds")
	flag.IntVar(&unitsPerRound, "units", 1000, "units spawned per round")
	flag.StringVar(&mode, "profile", "mem", "profile mode: mem or cpu")
	flag.Parse()

	logger.Init()

	var p interface{ Stop() }
	if mode == "cpu" {
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	} else {
		p = profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	}
	run(rounds, unitsPerRound)
	p.Stop()
}

func run(rounds, unitsPerRound int) {
	registry := gamedata.NewRegistry()
	if err := registry.Load(gamedata.DefaultTemplates); err != nil {
		panic(fmt.Sprintf("failed to load templates: %v", err))
	}

	militia, _ := registry.Get("Militia")
	archer, _ := registry.Get("Archer")

	for r := 0; r < rounds; r++ {
		c := domain.NewUnitContainer(0)

		// Спавн: каждая пара юнитов клонирует атрибуты своего типа
		units := make([]*domain.Unit, 0, unitsPerRound)
		for i := 0; i < unitsPerRound; i++ {
			ut := militia
			if i%2 == 0 {
				ut = archer
			}
			units = append(units, c.NewUnit(ut, nil))
		}

		// Бой: каждый бьет соседа, пока половина не поляжет
		for i := 0; i+1 < len(units); i += 2 {
			attacker, target := units[i], units[i+1]
			for !target.IsDead() {
				systems.ApplyAttack(attacker, target)
				if proj := systems.LaunchProjectile(c, attacker); proj != nil {
					c.Destroy(proj.ID)
				}
			}
		}

		// Зачистка
		for _, u := range units {
			c.Destroy(u.ID)
		}
	}
}
