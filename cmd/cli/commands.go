package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/limaJavier/tournament/pkg/calendar"
	"github.com/limaJavier/tournament/pkg/model"
	"github.com/limaJavier/tournament/pkg/sat"
)

const unsatisfiableMessage = "There is not any possible match scheduling that satisfies tournament conditions."

var satCmd = &cobra.Command{
	Use:   "sat <input-json-file> <output-cnf-file>",
	Short: "Generate the SAT model of a tournament in DIMACS format",
	Args:  cobra.ExactArgs(2),
	RunE:  generateSat,
}

var icalCmd = &cobra.Command{
	Use:   "ical <input-json-file> <output-ics-file>",
	Short: "Schedule a tournament and write its matches as an iCalendar file",
	Long: `Schedule a tournament and write its matches as an iCalendar file.
The SAT model and the solver's result are written next to the calendar, with the .cnf and .out extensions.`,
	Args: cobra.ExactArgs(2),
	RunE: generateCalendar,
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule <input-json-file>",
	Short: "Schedule a tournament and print its matches",
	Args:  cobra.ExactArgs(1),
	RunE:  printSchedule,
}

func init() {
	rootCmd.AddCommand(satCmd, icalCmd, scheduleCmd)
}

func generateSat(cmd *cobra.Command, args []string) error {
	inFile, outFile := args[0], args[1]
	if err := checkExtension(outFile, ".cnf"); err != nil {
		return err
	}

	env, err := setup(cmd, "sat")
	if err != nil {
		return err
	}
	defer env.flushMetrics()

	_, _, err = env.generate(inFile, outFile)
	return err
}

func generateCalendar(cmd *cobra.Command, args []string) error {
	inFile, outFile := args[0], args[1]
	if err := checkExtension(outFile, ".ics"); err != nil {
		return err
	}
	base := strings.TrimSuffix(outFile, filepath.Ext(outFile))

	env, err := setup(cmd, "ical")
	if err != nil {
		return err
	}
	defer env.flushMetrics()

	tournament, m, err := env.generate(inFile, base+".cnf")
	if err != nil {
		return err
	}

	ctx, cancel := env.solveContext()
	defer cancel()
	schedule, err := env.schedule(ctx, tournament, m, base+".out")
	if err != nil {
		return err
	}

	env.log.Infof("Generating iCalendar file in %v...", outFile)
	if err := calendar.WriteFile(outFile, tournament, schedule, time.Now().UTC()); err != nil {
		return err
	}
	env.log.Infof("iCalendar file generated with %d matches", len(schedule))

	return &exitError{code: exitSatisfiable}
}

func printSchedule(cmd *cobra.Command, args []string) error {
	env, err := setup(cmd, "schedule")
	if err != nil {
		return err
	}
	defer env.flushMetrics()

	env.log.Infof("Scanning tournament parameters from %v...", args[0])
	tournament, err := model.InputFromJson(args[0])
	if err != nil {
		return fmt.Errorf("cannot parse input file: %w", err)
	}
	m, err := env.buildModel(tournament)
	if err != nil {
		return err
	}

	ctx, cancel := env.solveContext()
	defer cancel()
	schedule, err := env.schedule(ctx, tournament, m, "")
	if err != nil {
		return err
	}

	if err := writeTable(cmd.OutOrStdout(), tournament, schedule); err != nil {
		return err
	}
	return &exitError{code: exitSatisfiable}
}

// generate scans the tournament parameters and writes the SAT model into cnfFile
func (env *environment) generate(inFile, cnfFile string) (model.Tournament, model.Model, error) {
	env.log.Infof("Scanning tournament parameters from %v...", inFile)
	tournament, err := model.InputFromJson(inFile)
	if err != nil {
		return model.Tournament{}, model.Model{}, fmt.Errorf("cannot parse input file: %w", err)
	}
	env.log.Debugw("tournament parameters scanned", map[string]any{
		"name":         tournament.Name,
		"days":         tournament.Days,
		"blocks":       tournament.Blocks,
		"participants": len(tournament.Participants),
	})

	env.log.Infof("Generating SAT model in %v...", cnfFile)
	m, err := env.buildModel(tournament)
	if err != nil {
		return model.Tournament{}, model.Model{}, err
	}
	if err := writeFile(cnfFile, m.SAT(tournament.Name).WriteDIMACS); err != nil {
		return model.Tournament{}, model.Model{}, err
	}
	env.log.Infof("SAT model generated (%v)", m)

	return tournament, m, nil
}

func (env *environment) buildModel(tournament model.Tournament) (model.Model, error) {
	m, err := model.BuildModel(tournament.Shape())
	if err != nil {
		return model.Model{}, err
	}
	env.recorder.RecordModel(m)
	for _, family := range m.Families {
		env.log.Debugw("constraint family generated", map[string]any{"family": family.Name, "clauses": family.Clauses})
	}
	return m, nil
}

// schedule solves the tournament's model and verifies the resulting schedule. The solver's result is written into
// resultFile unless it's empty
func (env *environment) schedule(ctx context.Context, tournament model.Tournament, m model.Model, resultFile string) ([]model.Match, error) {
	solver, err := env.solver()
	if err != nil {
		return nil, err
	}
	capture := &capturingSolver{SATSolver: solver}
	scheduler := model.NewSatScheduler(capture)

	env.log.Infof("Calculating SAT result using %v...", env.cfg.Solver.Name)
	schedule, err := scheduler.Solve(ctx, tournament, m)
	if err != nil {
		return nil, fmt.Errorf("an error occurred during schedule construction: %w", err)
	}
	env.log.Infof("Result calculated (%v)", m)

	if resultFile != "" {
		write := func(w io.Writer) error { return sat.WriteSolution(w, capture.solution) }
		if err := writeFile(resultFile, write); err != nil {
			return nil, err
		}
	}

	if schedule == nil {
		return nil, &exitError{code: exitUnsatisfiable, message: unsatisfiableMessage}
	} else if !scheduler.Verify(schedule, tournament) {
		env.log.Errorf("the schedule found violates the tournament constraints")
		return nil, &exitError{code: exitVerificationFailed}
	}
	return schedule, nil
}

// capturingSolver keeps the last solution returned by the underlying solver
type capturingSolver struct {
	sat.SATSolver
	solution sat.SATSolution
}

func (solver *capturingSolver) Solve(ctx context.Context, instance sat.SAT) (sat.SATSolution, error) {
	solution, err := solver.SATSolver.Solve(ctx, instance)
	solver.solution = solution
	return solution, err
}

func writeTable(w io.Writer, tournament model.Tournament, schedule []model.Match) error {
	table := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(table, "DATE\tDAY\tTIME\tLOCAL\tVISIT")
	for _, match := range calendar.Events(schedule) {
		begin := calendar.Begin(tournament, match)
		end := begin.Add(model.BlockHours * time.Hour)
		fmt.Fprintf(table, "%v\t%v\t%v-%v\t%v\t%v\n",
			begin.Format("2006-01-02"),
			begin.Weekday(),
			begin.Format("15:04"),
			end.Format("15:04"),
			tournament.Participants[match.Local],
			tournament.Participants[match.Visit],
		)
	}
	return table.Flush()
}

func writeFile(name string, write func(io.Writer) error) error {
	file, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("cannot create %v: %w", name, err)
	}
	if err := write(file); err != nil {
		file.Close()
		return fmt.Errorf("cannot write %v: %w", name, err)
	}
	return file.Close()
}

func checkExtension(file, extension string) error {
	if filepath.Ext(file) != extension {
		return fmt.Errorf("file extension for %v not allowed", file)
	}
	return nil
}
