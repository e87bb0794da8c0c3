package main

import (
	"bytes"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/limaJavier/tournament/pkg/model"
	"github.com/limaJavier/tournament/pkg/sat"

	"github.com/samber/lo"
)

const KB = 1024

type ResultType int

const (
	solved ResultType = iota
	unsatisfiable
	timeout
)

var resultTypes = map[ResultType]string{
	solved:        "solved",
	unsatisfiable: "unsatisfiable",
	timeout:       "timeout",
}

type TestMetadata struct {
	Name         string
	Days         uint64
	Blocks       uint64
	Participants int
	Variables    uint64
	Clauses      uint64
}

type BenchmarkResult struct {
	Solver        string
	Test          TestMetadata
	Duration      int64
	Memory        float32
	CpuPercentage int64
	Result        ResultType
}

func main() {
	executablePath := flag.String("exec", "../../bin/tournament", "Path to the tournament executable")
	testDirectory := flag.String("tests", "../../test/", "Directory holding the tournament JSON files")
	solverList := flag.String("solvers", strings.Join(sat.ValidSolvers, ","), "Comma-separated SAT-Solvers to benchmark")
	timeoutSeconds := flag.Int("timeout", 600, "Solver timeout in seconds")
	outFile := flag.String("out", "benchmark_results.csv", "Path to the CSV file where results will be written")
	flag.Parse()

	tests := getTests(*testDirectory)
	solvers := strings.Split(*solverList, ",")
	results := make([]BenchmarkResult, 0, len(tests)*len(solvers))

	for _, test := range tests {
		for _, solver := range solvers {
			fmt.Printf("Benchmarking test \"%v\" with solver \"%v\"\n", test.Name, solver)

			duration, maxMemory, cpuPercentage, result := measure(*executablePath, solver, *timeoutSeconds, test.Name)

			results = append(results, BenchmarkResult{
				Solver:        solver,
				Test:          test,
				Duration:      duration,
				Memory:        maxMemory,
				CpuPercentage: cpuPercentage,
				Result:        result,
			})
		}
	}

	toCsv(*outFile, results)
}

func getTests(directory string) []TestMetadata {
	testFiles, err := os.ReadDir(directory)
	if err != nil {
		log.Fatalf("cannot read directory: %v", err)
	}

	tests := make([]TestMetadata, 0, len(testFiles))
	for _, file := range testFiles {
		if file.IsDir() || filepath.Ext(file.Name()) != ".json" {
			continue
		}

		filename := filepath.Join(directory, file.Name())
		tournament, err := model.InputFromJson(filename)
		if err != nil {
			log.Fatalf("cannot parse input file: %v", err)
		}
		m, err := model.BuildModel(tournament.Shape())
		if err != nil {
			log.Fatalf("cannot build model of %v: %v", filename, err)
		}

		tests = append(tests, TestMetadata{
			Name:         filename,
			Days:         tournament.Days,
			Blocks:       tournament.Blocks,
			Participants: len(tournament.Participants),
			Variables:    m.MaxVariable,
			Clauses:      m.ClauseCount,
		})
	}

	return tests
}

func measure(executablePath, solver string, timeoutSeconds int, testFile string) (duration int64, maxMemory float32, cpuPercentage int64, result ResultType) {
	cmd := exec.Command("/usr/bin/time", "-v", executablePath, "schedule", testFile, "--solver", solver, "--timeout", strconv.Itoa(timeoutSeconds))

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	cmd.Run()
	switch exitCode := cmd.ProcessState.ExitCode(); {
	case exitCode == 10:
		result = solved
	case exitCode == 20:
		result = unsatisfiable
	case strings.Contains(stdErr.String(), "deadline exceeded"):
		result = timeout
	default:
		log.Fatalf("an error occurred during the execution of \"tournament\" at test \"%v\" using solver \"%v\": %v\n", testFile, solver, stdErr.String())
	}

	splits := strings.Split(stdErr.String(), "\n")
	getLine := func(substr string) string {
		line, ok := lo.Find(splits, func(line string) bool {
			return strings.Contains(strings.ToLower(line), substr)
		})
		if !ok {
			log.Fatalf("Substring \"%v\" could not be found", substr)
		}
		return line
	}

	duration = parseDurationLine(getLine("wall clock"))
	maxMemory = parseMemoryLine(getLine("maximum resident set size"))
	cpuPercentage = parseCpuPercentageLine(getLine("percent of cpu"))

	return duration, maxMemory, cpuPercentage, result
}

func toCsv(name string, results []BenchmarkResult) {
	file, err := os.Create(name)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Solver", "Test", "Days", "Blocks", "Participants", "Variables", "Clauses", "Duration(ms)", "Memory(MB)", "CPU(%)", "Result"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		if err := writer.Write(toRecord(result)); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

func toRecord(result BenchmarkResult) []string {
	return []string{
		result.Solver,
		result.Test.Name,
		fmt.Sprintf("%d", result.Test.Days),
		fmt.Sprintf("%d", result.Test.Blocks),
		fmt.Sprintf("%d", result.Test.Participants),
		fmt.Sprintf("%d", result.Test.Variables),
		fmt.Sprintf("%d", result.Test.Clauses),
		fmt.Sprintf("%d", result.Duration),
		fmt.Sprintf("%.1f", result.Memory),
		fmt.Sprintf("%d", result.CpuPercentage),
		resultTypes[result.Result],
	}
}

func parseDurationLine(line string) int64 {
	durationStr := strings.Split(line, "(h:mm:ss or m:ss):")[1][1:]
	return parseDuration(durationStr)
}

func parseDuration(durationStr string) int64 {
	parts := strings.Split(durationStr, ":")
	secondsStr := parts[len(parts)-1]
	secondsParts := strings.Split(secondsStr, ".")

	var duration int64
	if len(parts) == 3 { // h:mm:ss
		hours := lo.Must(strconv.Atoi(parts[0]))
		minutes := lo.Must(strconv.Atoi(parts[1]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(hours*3600+minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else if len(parts) == 2 { // m:ss
		minutes := lo.Must(strconv.Atoi(parts[0]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else {
		log.Fatalf("unexpected duration format: %v", durationStr)
	}
	return duration
}

func parseMemoryLine(line string) float32 {
	memoryStr := strings.TrimSpace(strings.Split(line, ":")[1])
	return float32(lo.Must(strconv.ParseFloat(memoryStr, 32))) / KB
}

func parseCpuPercentageLine(line string) int64 {
	percentageStr := strings.TrimSpace(strings.Split(line, ":")[1])
	percentageStr = strings.TrimSuffix(percentageStr, "%")
	return int64(lo.Must(strconv.Atoi(percentageStr)))
}
