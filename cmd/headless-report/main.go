package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/Garsondee/Raycaster/internal/config"
	"github.com/Garsondee/Raycaster/internal/game"
)

type runStats struct {
	runIndex  int
	seed      int64
	sessionID string

	outcome game.Outcome
	ticks   int
	kills   int
	health  int

	firstFireTick    int
	firstContactTick int
	firstKillTick    int

	fires    int
	bumps    int
	contacts int
	hits     int

	contactEvents string
}

// contactSpan is how many ticks either side of first contact the report
// prints from the event log.
const contactSpan = 2

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var configPath string
	var fireRate float64

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 1800, "ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&configPath, "config", "", "YAML config overriding the built-in defaults")
	flag.Float64Var(&fireRate, "fire-rate", 0.05, "chance per tick that the scripted player fires")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if fireRate < 0 || fireRate > 1 {
		fmt.Println("error: -fire-rate must be within [0, 1]")
		return
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	fmt.Printf("=== Headless Session Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d fire_rate=%.2f enemies=%d map=%dx%d\n\n",
		runs, ticks, seedBase, seedStep, fireRate, len(cfg.Roster), len(cfg.Map[0]), len(cfg.Map))

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runScripted(i+1, seed, ticks, cfg, fireRate)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

func runScripted(runIndex int, seed int64, ticks int, cfg config.Config, fireRate float64) runStats {
	ts := game.NewTestSim(game.WithConfig(cfg))
	outcome := ts.RunWith(game.NewScriptedInput(seed, fireRate), ticks)

	entries := ts.SimLog.Entries()
	firstContact := firstTick(entries, "enemy", "contact")
	return runStats{
		runIndex:         runIndex,
		seed:             seed,
		sessionID:        ts.Session.ID.String(),
		outcome:          outcome,
		ticks:            ts.Session.Tick,
		kills:            ts.Session.Kills,
		health:           ts.Session.Player.Health,
		firstFireTick:    firstTick(entries, "player", "fire"),
		firstContactTick: firstContact,
		firstKillTick:    firstTick(entries, "enemy", "killed"),
		fires:            ts.SimLog.CountCategory("player", "fire"),
		bumps:            ts.SimLog.CountCategory("player", "bump"),
		contacts:         ts.SimLog.CountCategory("enemy", "contact"),
		hits:             ts.SimLog.CountCategory("enemy", "hit"),
		contactEvents:    eventsAround(ts.SimLog, firstContact, contactSpan),
	}
}

func firstTick(entries []game.SimLogEntry, category, key string) int {
	for _, e := range entries {
		if e.Category == category && e.Key == key {
			return e.Tick
		}
	}
	return -1
}

// eventsAround formats the log from span ticks before tick to span ticks
// after it. A negative tick means the event never happened.
func eventsAround(sl *game.SimLog, tick, span int) string {
	if tick < 0 {
		return ""
	}
	return sl.FormatRange(tick-span, tick+span)
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("session=%s outcome=%s ticks=%d kills=%d health=%d\n",
		rs.sessionID, rs.outcome, rs.ticks, rs.kills, rs.health)
	fmt.Printf("phase_markers: first_fire=%d first_contact=%d first_kill=%d\n",
		rs.firstFireTick, rs.firstContactTick, rs.firstKillTick)
	fmt.Printf("event_totals: fire=%d bump=%d contact=%d hit=%d\n",
		rs.fires, rs.bumps, rs.contacts, rs.hits)
	if rs.contactEvents != "" {
		fmt.Printf("first_contact_events:\n%s", rs.contactEvents)
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalKills := 0
	totalFires := 0
	totalBumps := 0
	totalContacts := 0
	totalHits := 0
	totalHealth := 0

	contactTicks := make([]int, 0, len(all))
	killTicks := make([]int, 0, len(all))
	for _, rs := range all {
		totalKills += rs.kills
		totalFires += rs.fires
		totalBumps += rs.bumps
		totalContacts += rs.contacts
		totalHits += rs.hits
		totalHealth += rs.health
		if rs.firstContactTick >= 0 {
			contactTicks = append(contactTicks, rs.firstContactTick)
		}
		if rs.firstKillTick >= 0 {
			killTicks = append(killTicks, rs.firstKillTick)
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d outcomes=[%s] survival=%.0f%%\n",
		len(all), formatCounts(outcomeCounts(all)), survivalRate(all))
	fmt.Printf("avg_per_run: kills=%.1f health=%.1f fire=%.1f bump=%.1f contact=%.1f hit=%.1f\n",
		avg(totalKills, len(all)), avg(totalHealth, len(all)), avg(totalFires, len(all)),
		avg(totalBumps, len(all)), avg(totalContacts, len(all)), avg(totalHits, len(all)))
	fmt.Printf("phase_marker_avg_ticks: first_contact=%s first_kill=%s\n",
		avgTickString(contactTicks), avgTickString(killTicks))
}

// outcomeCounts tallies how each run ended. Runs cut off by -ticks count as
// running.
func outcomeCounts(all []runStats) map[string]int {
	counts := map[string]int{}
	for _, rs := range all {
		counts[rs.outcome.String()]++
	}
	return counts
}

// survivalRate is the percentage of runs the player was not defeated in.
func survivalRate(all []runStats) float64 {
	if len(all) == 0 {
		return 0
	}
	survived := 0
	for _, rs := range all {
		if rs.outcome != game.OutcomeDefeated {
			survived++
		}
	}
	return float64(survived) / float64(len(all)) * 100
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func formatCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	return strings.Join(parts, ",")
}
