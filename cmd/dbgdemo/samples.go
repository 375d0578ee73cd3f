package main

import (
	"math"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bjaus/dbg"
	"github.com/bjaus/dbg/ds"
)

func (a *app) samplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "Print one diagnostic per value category",
		Args:  cobra.NoArgs,
		RunE:  a.runSamples,
	}
}

func (a *app) runSamples(cmd *cobra.Command, _ []string) error {
	p, err := a.printer(cmd.OutOrStdout(), "writeSamples")
	if err != nil {
		return err
	}
	a.logger.Debug("Rendering samples")
	if err := writeSamples(p); err != nil {
		a.logger.Error("Rendering samples failed", zap.Error(err))
		return err
	}
	a.logger.Info("Samples rendered")
	return nil
}

type unknown struct{ id int }

func writeSamples(p *dbg.Printer) error {
	bool1 := true

	int1 := int32(math.MaxInt32)
	int2 := int64(math.MaxInt64)
	float1 := float32(3.14)
	double1 := 3.14159

	string1 := "hello"
	char1 := dbg.Char('a')
	bytes1 := []byte("hi")

	array1 := [3]int{1, 2, 3}
	vec1 := []int{1, 2, 3}
	vec2 := [][]int{{1, 2, 3}, {4, 5, 6}}
	seq1 := slices.Values(vec1)
	list1 := ds.NewAutoList[int](nil)
	list1.Set(2, 3)

	map1 := map[int]string{1: "one", 2: "two"}
	map2 := map[string][]int{"item10": {10}, "item2": {2}, "item1": {1}}

	stack1 := ds.NewStack(1, 2, 3)
	queue1 := ds.NewQueue(1, 2, 3)
	priorityQueue1 := ds.NewPriorityQueue(1, 3, 2)

	pair1 := ds.MakePair(1, "one")
	tuple1 := struct {
		N int
		S string
		F float32
	}{1, "one", 3.14}

	unknown1 := unknown{id: 1}

	if err := p.Debug(bool1); err != nil {
		return err
	}
	if err := p.Debug(int1, int2, float1, double1); err != nil {
		return err
	}
	if err := p.Debug(string1, char1, bytes1); err != nil {
		return err
	}
	if err := p.Debug(array1, vec1, vec2, seq1, list1); err != nil {
		return err
	}
	if err := p.Debug(map1, map2); err != nil {
		return err
	}
	if err := p.Debug(stack1, queue1, priorityQueue1); err != nil {
		return err
	}
	if err := p.Debug(pair1, tuple1); err != nil {
		return err
	}
	if err := p.Debug(unknown1); err != nil {
		return err
	}
	return nestedSample(p)
}

func nestedSample(p *dbg.Printer) error {
	varInFunc := 1234
	return p.Debug(varInFunc)
}
