package training

import (
	"math"
	"sort"

	"CreditPathAI/internal/model"
)

// FitScaler computes per-feature mean and population standard deviation.
// Constant features get a scale of 1.
func FitScaler(X [][]float64) model.StandardScaler {
	if len(X) == 0 {
		return model.StandardScaler{}
	}
	d := len(X[0])
	mean := make([]float64, d)
	scale := make([]float64, d)
	for _, row := range X {
		for j, v := range row {
			mean[j] += v
		}
	}
	n := float64(len(X))
	for j := range mean {
		mean[j] /= n
	}
	for _, row := range X {
		for j, v := range row {
			diff := v - mean[j]
			scale[j] += diff * diff
		}
	}
	for j := range scale {
		scale[j] = math.Sqrt(scale[j] / n)
		if scale[j] == 0 {
			scale[j] = 1
		}
	}
	return model.StandardScaler{Mean: mean, Scale: scale}
}

// TransformAll applies s to every row.
func TransformAll(s model.StandardScaler, X [][]float64) ([][]float64, error) {
	out := make([][]float64, len(X))
	for i, row := range X {
		t, err := s.Transform(row)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

// FitLogistic minimizes the mean log-loss plus an L2 penalty of 1/(2*C*n)*|w|^2
// by full-batch gradient descent. The intercept is not penalized.
func FitLogistic(X [][]float64, y []int, c, lr float64, epochs int) model.LogisticRegression {
	if len(X) == 0 {
		return model.LogisticRegression{}
	}
	d := len(X[0])
	n := float64(len(X))
	w := make([]float64, d)
	var b float64
	grad := make([]float64, d)
	for epoch := 0; epoch < epochs; epoch++ {
		for j := range grad {
			grad[j] = 0
		}
		var gb float64
		for i, row := range X {
			z := b
			for j, v := range row {
				z += w[j] * v
			}
			r := model.Sigmoid(z) - float64(y[i])
			for j, v := range row {
				grad[j] += r * v
			}
			gb += r
		}
		for j := range w {
			w[j] -= lr * (grad[j]/n + w[j]/(c*n))
		}
		b -= lr * gb / n
	}
	return model.LogisticRegression{Coef: w, Intercept: b}
}

// Accuracy is the share of rows whose probability falls on the right side of 0.5.
func Accuracy(y []int, p []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	correct := 0
	for i := range y {
		pred := 0
		if p[i] >= 0.5 {
			pred = 1
		}
		if pred == y[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(y))
}

// ROCAUC is the Mann-Whitney estimate of the area under the ROC curve,
// with tied scores sharing their average rank.
func ROCAUC(y []int, p []float64) float64 {
	idx := make([]int, len(p))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return p[idx[a]] < p[idx[b]] })

	ranks := make([]float64, len(p))
	for i := 0; i < len(idx); {
		j := i
		for j+1 < len(idx) && p[idx[j+1]] == p[idx[i]] {
			j++
		}
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg
		}
		i = j + 1
	}

	var pos, neg int
	var rankSum float64
	for i, label := range y {
		if label == 1 {
			pos++
			rankSum += ranks[i]
		} else {
			neg++
		}
	}
	if pos == 0 || neg == 0 {
		return 0
	}
	return (rankSum - float64(pos*(pos+1))/2) / float64(pos*neg)
}
