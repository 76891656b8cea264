package inference

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

// Model is a trained binary classifier. Implementations must be safe for
// concurrent use once loaded.
type Model interface {
	Classify(features []float64) (int, error)
	Score(features []float64) (float64, error)
	Features() int
	Type() string
}

// Artifact types understood by LoadModel.
const (
	TypeLogisticRegression = "logistic_regression"
	TypeDecisionTree       = "decision_tree"
)

type envelope struct {
	Type     string `json:"type"`
	Features int    `json:"features"`
}

// LoadModel reads a JSON model artifact and returns the matching implementation.
func LoadModel(path string) (Model, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}
	return ParseModel(payload)
}

// ParseModel decodes a model artifact from memory.
func ParseModel(payload []byte) (Model, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact: %w", err)
	}

	switch env.Type {
	case TypeLogisticRegression:
		m := &LogisticRegression{}
		if err := json.Unmarshal(payload, m); err != nil {
			return nil, fmt.Errorf("failed to parse logistic regression: %w", err)
		}
		if err := m.validate(); err != nil {
			return nil, err
		}
		return m, nil
	case TypeDecisionTree:
		m := &DecisionTree{}
		if err := json.Unmarshal(payload, m); err != nil {
			return nil, fmt.Errorf("failed to parse decision tree: %w", err)
		}
		if err := m.validate(); err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unsupported model type %q", env.Type)
	}
}

func checkInput(features []float64, want int) error {
	if len(features) != want {
		return fmt.Errorf("X has %d features, but model expects %d", len(features), want)
	}
	for i, v := range features {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("input contains NaN or infinity at column %d", i)
		}
	}
	return nil
}

// LogisticRegression scores with sigmoid(intercept + w·x).
type LogisticRegression struct {
	NFeatures    int       `json:"features"`
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
	Threshold    float64   `json:"threshold"`
}

func (m *LogisticRegression) validate() error {
	if m.NFeatures <= 0 {
		return errors.New("logistic regression declares no features")
	}
	if len(m.Coefficients) != m.NFeatures {
		return fmt.Errorf("logistic regression has %d coefficients for %d features", len(m.Coefficients), m.NFeatures)
	}
	if m.Threshold == 0 {
		m.Threshold = 0.5
	}
	if m.Threshold < 0 || m.Threshold > 1 {
		return fmt.Errorf("logistic regression threshold %v outside [0,1]", m.Threshold)
	}
	return nil
}

func (m *LogisticRegression) Features() int { return m.NFeatures }

func (m *LogisticRegression) Type() string { return TypeLogisticRegression }

func (m *LogisticRegression) Score(features []float64) (float64, error) {
	if err := checkInput(features, m.NFeatures); err != nil {
		return 0, err
	}
	z := m.Intercept
	for i, w := range m.Coefficients {
		z += w * features[i]
	}
	return 1 / (1 + math.Exp(-z)), nil
}

func (m *LogisticRegression) Classify(features []float64) (int, error) {
	p, err := m.Score(features)
	if err != nil {
		return 0, err
	}
	if p >= m.Threshold {
		return 1, nil
	}
	return 0, nil
}

// TreeNode is one node of a flattened binary tree.
type TreeNode struct {
	FeatureIdx  int     `json:"feature_idx"`
	Threshold   float64 `json:"threshold"`
	LeftChild   int     `json:"left_child"`
	RightChild  int     `json:"right_child"`
	ClassLabel  int     `json:"class_label"`
	Probability float64 `json:"probability"`
	IsLeaf      bool    `json:"is_leaf"`
}

// DecisionTree walks x[feature] <= threshold to the left child.
type DecisionTree struct {
	NFeatures int        `json:"features"`
	Nodes     []TreeNode `json:"nodes"`
}

func (dt *DecisionTree) validate() error {
	if dt.NFeatures <= 0 {
		return errors.New("decision tree declares no features")
	}
	if len(dt.Nodes) == 0 {
		return errors.New("decision tree has no nodes")
	}
	for i, n := range dt.Nodes {
		if n.IsLeaf {
			if n.ClassLabel != 0 && n.ClassLabel != 1 {
				return fmt.Errorf("decision tree leaf %d has label %d", i, n.ClassLabel)
			}
			if n.Probability < 0 || n.Probability > 1 {
				return fmt.Errorf("decision tree leaf %d has probability %v", i, n.Probability)
			}
			continue
		}
		if n.FeatureIdx < 0 || n.FeatureIdx >= dt.NFeatures {
			return fmt.Errorf("decision tree node %d splits on column %d", i, n.FeatureIdx)
		}
		// Children must point forward, which also rules out cycles.
		if n.LeftChild <= i || n.LeftChild >= len(dt.Nodes) || n.RightChild <= i || n.RightChild >= len(dt.Nodes) {
			return fmt.Errorf("decision tree node %d has invalid children", i)
		}
	}
	return nil
}

func (dt *DecisionTree) Features() int { return dt.NFeatures }

func (dt *DecisionTree) Type() string { return TypeDecisionTree }

func (dt *DecisionTree) leaf(features []float64) (TreeNode, error) {
	if err := checkInput(features, dt.NFeatures); err != nil {
		return TreeNode{}, err
	}
	idx := 0
	for {
		node := dt.Nodes[idx]
		if node.IsLeaf {
			return node, nil
		}
		if features[node.FeatureIdx] <= node.Threshold {
			idx = node.LeftChild
		} else {
			idx = node.RightChild
		}
	}
}

func (dt *DecisionTree) Classify(features []float64) (int, error) {
	node, err := dt.leaf(features)
	if err != nil {
		return 0, err
	}
	return node.ClassLabel, nil
}

func (dt *DecisionTree) Score(features []float64) (float64, error) {
	node, err := dt.leaf(features)
	if err != nil {
		return 0, err
	}
	return node.Probability, nil
}
