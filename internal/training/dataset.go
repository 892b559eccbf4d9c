package training

import (
	"math"
	"math/rand/v2"
	"sort"
)

// Dataset is a feature matrix in model.FeatureOrder with binary labels (1 = default).
type Dataset struct {
	X [][]float64
	Y []int
}

func (d Dataset) Len() int { return len(d.Y) }

// Positives counts rows labelled as defaults.
func (d Dataset) Positives() int {
	n := 0
	for _, y := range d.Y {
		n += y
	}
	return n
}

// Synthesize draws n borrowers, about positiveRate of them defaulters. Defaulters
// skew toward larger loans, lower income, higher dti and utilization, and
// shorter credit history.
func Synthesize(n int, positiveRate float64, rng *rand.Rand) Dataset {
	ds := Dataset{X: make([][]float64, n), Y: make([]int, n)}
	for i := 0; i < n; i++ {
		y := 0
		if rng.Float64() < positiveRate {
			y = 1
		}
		ds.X[i] = sampleBorrower(y, rng)
		ds.Y[i] = y
	}
	return ds
}

func sampleBorrower(y int, rng *rand.Rand) []float64 {
	s := float64(y)
	loan := 10000 + 50000*math.Abs(rng.NormFloat64()+0.6*s)
	income := 20000 + 100000*math.Abs(0.8*rng.NormFloat64()+1.0-0.6*s)
	dti := math.Min(100, 5+30*math.Abs(0.8*rng.NormFloat64()+0.5+0.7*s))
	openAcc := math.Floor(1 + 10*math.Abs(rng.NormFloat64()+0.2*s))
	creditAge := 1 + 15*math.Abs(0.7*rng.NormFloat64()+0.8-0.5*s)
	revol := math.Min(100, 10+80*math.Abs(0.4*rng.NormFloat64()+0.35+0.3*s))
	return []float64{loan, income, dti, openAcc, creditAge, revol}
}

// StratifiedSplit holds out testSize of each class.
func StratifiedSplit(ds Dataset, testSize float64, rng *rand.Rand) (train, test Dataset) {
	byClass := map[int][]int{}
	for i, y := range ds.Y {
		byClass[y] = append(byClass[y], i)
	}
	for _, class := range []int{0, 1} {
		idx := byClass[class]
		rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
		nTest := int(math.Round(float64(len(idx)) * testSize))
		for k, i := range idx {
			if k < nTest {
				test.X = append(test.X, ds.X[i])
				test.Y = append(test.Y, ds.Y[i])
			} else {
				train.X = append(train.X, ds.X[i])
				train.Y = append(train.Y, ds.Y[i])
			}
		}
	}
	return train, test
}

// Oversample balances the classes by interpolating new minority rows between
// each picked minority row and one of its k nearest minority neighbours.
func Oversample(ds Dataset, k int, rng *rand.Rand) Dataset {
	pos := ds.Positives()
	neg := ds.Len() - pos
	minority := 1
	if pos > neg {
		minority = 0
	}
	var rows [][]float64
	for i, y := range ds.Y {
		if y == minority {
			rows = append(rows, ds.X[i])
		}
	}
	need := abs(neg - pos)
	if need == 0 || len(rows) < 2 {
		return ds
	}
	if k >= len(rows) {
		k = len(rows) - 1
	}

	out := Dataset{
		X: append([][]float64(nil), ds.X...),
		Y: append([]int(nil), ds.Y...),
	}
	neighbours := make(map[int][]int)
	for n := 0; n < need; n++ {
		a := rng.IntN(len(rows))
		nn, ok := neighbours[a]
		if !ok {
			nn = nearest(rows, a, k)
			neighbours[a] = nn
		}
		b := nn[rng.IntN(len(nn))]
		gap := rng.Float64()
		synth := make([]float64, len(rows[a]))
		for j := range synth {
			synth[j] = rows[a][j] + gap*(rows[b][j]-rows[a][j])
		}
		out.X = append(out.X, synth)
		out.Y = append(out.Y, minority)
	}
	return out
}

func nearest(rows [][]float64, a, k int) []int {
	type cand struct {
		i int
		d float64
	}
	cands := make([]cand, 0, len(rows)-1)
	for i, r := range rows {
		if i == a {
			continue
		}
		var d float64
		for j, v := range r {
			diff := v - rows[a][j]
			d += diff * diff
		}
		cands = append(cands, cand{i, d})
	}
	sort.Slice(cands, func(i, j int) bool { return cands[i].d < cands[j].d })
	out := make([]int, k)
	for i := range out {
		out[i] = cands[i].i
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
