// Package tabular loads the row-oriented, human-authored forest description
// consumed by the flatten package.
//
// A source file starts with a comment line declaring the problem kind:
//
//	# {"problem_type": "classification"}
//
// followed by a CSV table with one row per node:
//
//	tree_idx,node_idx,left daughter,right daughter,split var,split point,status,prediction
//
// Branch rows carry a split variable name; terminal rows carry a prediction
// (a class name for classification, a numeric value for regression) and the
// literal "NA" or an empty field where a value is absent. The loader builds
// the feature-name and target-name maps and hands the core fully
// name-resolved numeric ids.
package tabular

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"

	"github.com/groveml/grove/errs"
	"github.com/groveml/grove/flatten"
	"github.com/groveml/grove/format"
)

// maxTargets mirrors the optimized format's class id limit.
const maxTargets = 255

// maxFeatures is bounded by the u8 feature count in the optimized header.
const maxFeatures = 255

// ClassificationSource is a loaded classification forest description:
// name-resolved nodes plus the maps used to resolve them.
type ClassificationSource struct {
	Nodes    []flatten.SourceNode[uint16]
	Features *NameMap
	Targets  *NameMap
}

// RegressionSource is a loaded regression forest description.
type RegressionSource struct {
	Nodes    []flatten.SourceNode[float32]
	Features *NameMap
}

type row struct {
	treeIdx    int
	nodeIdx    int
	left       uint32
	right      uint32
	splitVar   string // "" when absent
	splitPoint float32
	status     int
	prediction string // "" when absent
}

// LoadClassification reads a classification forest description.
//
// Returns ErrWrongProblemType if the source declares itself a regression
// forest, ErrMalformedSource for rows that are neither branch nor terminal,
// and ErrForestTooLarge if the source uses more than 255 distinct targets
// or features.
func LoadClassification(r io.Reader) (*ClassificationSource, error) {
	rows, err := readRows(r, format.KindClassification)
	if err != nil {
		return nil, err
	}

	src := &ClassificationSource{
		Features: newNameMap(),
		Targets:  newNameMap(),
	}

	for _, rec := range rows {
		n := flatten.SourceNode[uint16]{TreeIdx: rec.treeIdx, NodeIdx: rec.nodeIdx}

		switch {
		case rec.splitVar != "":
			if rec.left == 0 || rec.right == 0 {
				return nil, fmt.Errorf("tree %d node %d: branch without children: %w",
					rec.treeIdx, rec.nodeIdx, errs.ErrMalformedSource)
			}
			n.Kind = flatten.KindBranch
			n.SplitWith = src.Features.intern(rec.splitVar)
			n.SplitAt = rec.splitPoint
			n.Left = rec.left
			n.Right = rec.right
		case rec.prediction != "":
			if rec.status != -1 {
				return nil, fmt.Errorf("tree %d node %d: prediction on non-terminal row: %w",
					rec.treeIdx, rec.nodeIdx, errs.ErrMalformedSource)
			}
			n.Kind = flatten.KindLeaf
			n.Prediction = uint16(src.Targets.intern(rec.prediction))
		default:
			return nil, fmt.Errorf("tree %d node %d is neither branch nor leaf: %w",
				rec.treeIdx, rec.nodeIdx, errs.ErrMalformedSource)
		}

		src.Nodes = append(src.Nodes, n)
	}

	if src.Targets.Len() > maxTargets {
		return nil, fmt.Errorf("%d targets exceed %d: %w", src.Targets.Len(), maxTargets, errs.ErrForestTooLarge)
	}
	if src.Features.Len() > maxFeatures {
		return nil, fmt.Errorf("%d features exceed %d: %w", src.Features.Len(), maxFeatures, errs.ErrForestTooLarge)
	}

	return src, nil
}

// LoadRegression reads a regression forest description. Same contract as
// LoadClassification with numeric terminal values.
func LoadRegression(r io.Reader) (*RegressionSource, error) {
	rows, err := readRows(r, format.KindRegression)
	if err != nil {
		return nil, err
	}

	src := &RegressionSource{Features: newNameMap()}

	for _, rec := range rows {
		n := flatten.SourceNode[float32]{TreeIdx: rec.treeIdx, NodeIdx: rec.nodeIdx}

		switch {
		case rec.splitVar != "":
			if rec.left == 0 || rec.right == 0 {
				return nil, fmt.Errorf("tree %d node %d: branch without children: %w",
					rec.treeIdx, rec.nodeIdx, errs.ErrMalformedSource)
			}
			n.Kind = flatten.KindBranch
			n.SplitWith = src.Features.intern(rec.splitVar)
			n.SplitAt = rec.splitPoint
			n.Left = rec.left
			n.Right = rec.right
		case rec.prediction != "":
			if rec.status != -1 {
				return nil, fmt.Errorf("tree %d node %d: prediction on non-terminal row: %w",
					rec.treeIdx, rec.nodeIdx, errs.ErrMalformedSource)
			}
			value, err := strconv.ParseFloat(rec.prediction, 32)
			if err != nil {
				return nil, fmt.Errorf("tree %d node %d: bad prediction %q: %w",
					rec.treeIdx, rec.nodeIdx, rec.prediction, errs.ErrMalformedSource)
			}
			n.Kind = flatten.KindLeaf
			n.Prediction = float32(value)
		default:
			return nil, fmt.Errorf("tree %d node %d is neither branch nor leaf: %w",
				rec.treeIdx, rec.nodeIdx, errs.ErrMalformedSource)
		}

		src.Nodes = append(src.Nodes, n)
	}

	if src.Features.Len() > maxFeatures {
		return nil, fmt.Errorf("%d features exceed %d: %w", src.Features.Len(), maxFeatures, errs.ErrForestTooLarge)
	}

	return src, nil
}

// readRows validates the problem-kind header line and parses the CSV table.
func readRows(r io.Reader, expected format.ProblemKind) ([]row, error) {
	br := bufio.NewReader(r)

	if err := validateHeader(br, expected); err != nil {
		return nil, err
	}

	cr := csv.NewReader(br)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading column header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var rows []row
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading node row: %w", err)
		}

		rec, err := parseRow(record, cols)
		if err != nil {
			return nil, err
		}
		rows = append(rows, rec)
	}

	return rows, nil
}

// validateHeader consumes the first line, which must be a '#' comment
// holding a JSON object with a "problem_type" field matching expected.
func validateHeader(br *bufio.Reader, expected format.ProblemKind) error {
	line, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading problem-type header: %w", err)
	}

	body, ok := strings.CutPrefix(strings.TrimSpace(line), "#")
	if !ok {
		return fmt.Errorf("first line is not a '#' comment: %w", errs.ErrMalformedSource)
	}

	var header struct {
		ProblemType string `json:"problem_type"`
	}
	if err := gojson.Unmarshal([]byte(body), &header); err != nil {
		return fmt.Errorf("first line is not valid json: %w", errs.ErrMalformedSource)
	}

	var declared format.ProblemKind
	switch strings.ToLower(header.ProblemType) {
	case "classification":
		declared = format.KindClassification
	case "regression":
		declared = format.KindRegression
	default:
		return fmt.Errorf("unknown problem type %q: %w", header.ProblemType, errs.ErrMalformedSource)
	}

	if declared != expected {
		return fmt.Errorf("source declares %s, caller expects %s: %w", declared, expected, errs.ErrWrongProblemType)
	}

	return nil
}

type columns struct {
	treeIdx, nodeIdx, left, right, splitVar, splitPoint, status, prediction int
}

func mapColumns(header []string) (columns, error) {
	cols := columns{
		treeIdx: -1, nodeIdx: -1, left: -1, right: -1,
		splitVar: -1, splitPoint: -1, status: -1, prediction: -1,
	}
	want := map[string]*int{
		"tree_idx":       &cols.treeIdx,
		"node_idx":       &cols.nodeIdx,
		"left daughter":  &cols.left,
		"right daughter": &cols.right,
		"split var":      &cols.splitVar,
		"split point":    &cols.splitPoint,
		"status":         &cols.status,
		"prediction":     &cols.prediction,
	}

	for i, name := range header {
		if dst, ok := want[strings.TrimSpace(name)]; ok {
			*dst = i
		}
	}

	for name, dst := range want {
		if *dst < 0 {
			return columns{}, fmt.Errorf("missing column %q: %w", name, errs.ErrMalformedSource)
		}
	}

	return cols, nil
}

func parseRow(record []string, cols columns) (row, error) {
	var rec row
	var err error

	if rec.treeIdx, err = strconv.Atoi(record[cols.treeIdx]); err != nil {
		return row{}, fmt.Errorf("bad tree_idx %q: %w", record[cols.treeIdx], errs.ErrMalformedSource)
	}
	if rec.nodeIdx, err = strconv.Atoi(record[cols.nodeIdx]); err != nil {
		return row{}, fmt.Errorf("bad node_idx %q: %w", record[cols.nodeIdx], errs.ErrMalformedSource)
	}

	left, err := strconv.ParseUint(record[cols.left], 10, 32)
	if err != nil {
		return row{}, fmt.Errorf("bad left daughter %q: %w", record[cols.left], errs.ErrMalformedSource)
	}
	right, err := strconv.ParseUint(record[cols.right], 10, 32)
	if err != nil {
		return row{}, fmt.Errorf("bad right daughter %q: %w", record[cols.right], errs.ErrMalformedSource)
	}
	rec.left = uint32(left)
	rec.right = uint32(right)

	point, err := strconv.ParseFloat(record[cols.splitPoint], 32)
	if err != nil {
		return row{}, fmt.Errorf("bad split point %q: %w", record[cols.splitPoint], errs.ErrMalformedSource)
	}
	rec.splitPoint = float32(point)

	if rec.status, err = strconv.Atoi(record[cols.status]); err != nil {
		return row{}, fmt.Errorf("bad status %q: %w", record[cols.status], errs.ErrMalformedSource)
	}

	rec.splitVar = stringOrNA(record[cols.splitVar])
	rec.prediction = stringOrNA(record[cols.prediction])

	return rec, nil
}

// stringOrNA normalizes an absent field ("NA" or empty) to "".
func stringOrNA(s string) string {
	s = strings.TrimSpace(s)
	if s == "NA" {
		return ""
	}

	return s
}
