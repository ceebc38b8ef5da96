// Command dratcheck validates a DRAT refutation proof against a DIMACS
// CNF formula, per spec.md §6.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xDarkicex/dratcheck/checker"
	"github.com/xDarkicex/dratcheck/format"
)

type args struct {
	Formula string `arg:"positional,required" help:"DIMACS CNF formula file"`
	Proof   string `arg:"positional,required" help:"DRAT proof file"`
	Verbose bool   `arg:"-v,--verbose" help:"log one debug entry per committed proof instruction"`
}

func (args) Description() string {
	return "Checks a DRAT refutation proof against a DIMACS CNF formula."
}

// proofAdapter narrows *format.Proof to checker.ProofReader, translating
// format.Instruction into checker.Instruction. It exists because
// checker deliberately does not import package format (spec.md §1 calls
// the parser an external collaborator), so a proof instruction struct
// defined in format cannot satisfy an interface defined in checker
// without this small translation at the wiring boundary.
type proofAdapter struct {
	*format.Proof
}

func (a proofAdapter) Next() (checker.Instruction, bool, error) {
	instr, ok, err := a.Proof.Next()
	if err != nil || !ok {
		return checker.Instruction{}, ok, err
	}
	return checker.Instruction{Delete: instr.Delete, Clause: instr.Clause}, true, nil
}

func main() {
	os.Exit(run())
}

func run() int {
	var a args
	arg.MustParse(&a)

	level := zapcore.WarnLevel
	if a.Verbose {
		level = zapcore.DebugLevel
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	log, err := cfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "dratcheck: failed to initialize logger:", err)
		return 1
	}
	defer log.Sync()

	formulaFile, err := os.Open(a.Formula)
	if err != nil {
		fmt.Fprintln(os.Stderr, "dratcheck:", err)
		return 1
	}
	defer formulaFile.Close()

	proofFile, err := os.Open(a.Proof)
	if err != nil {
		fmt.Fprintln(os.Stderr, "dratcheck:", err)
		return 1
	}
	defer proofFile.Close()

	cnf, err := format.NewCNF(formulaFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "dratcheck:", err)
		return 1
	}
	proof := format.NewProof(proofFile)

	c := checker.New(log)
	outcome, err := c.Run(context.Background(), cnf, proofAdapter{proof})
	if err != nil {
		fmt.Fprintln(os.Stderr, "dratcheck:", err)
		return 1
	}

	fmt.Println(outcome.String())
	return outcome.ExitCode()
}
