// Package stats はダッシュボードの集計で使う小さな統計関数を提供します。
package stats

import "math"

// Mean は値の算術平均を返します。
// 値が空の場合はNaNを返します（「データなし」を表す値として上位層がそのまま扱います）。
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Pearson は2つの等長の値列のピアソン相関係数を返します。
// どちらかの列の分散がゼロの場合（定数列・要素数1以下）はNaNを返します。
// 浮動小数点誤差で±1を超えた値は[-1, 1]に丸めます。
func Pearson(x, y []float64) float64 {
	if len(x) != len(y) || len(x) == 0 {
		return math.NaN()
	}
	n := float64(len(x))

	var sumX, sumY, sumXX, sumYY, sumXY float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXX += x[i] * x[i]
		sumYY += y[i] * y[i]
		sumXY += x[i] * y[i]
	}

	varX := n*sumXX - sumX*sumX
	varY := n*sumYY - sumY*sumY
	if varX <= 0 || varY <= 0 {
		return math.NaN()
	}

	r := (n*sumXY - sumX*sumY) / math.Sqrt(varX*varY)
	if r > 1 {
		return 1
	}
	if r < -1 {
		return -1
	}
	return r
}

// CorrelationMatrix は列名付きの対称なピアソン相関行列です。
// Values[i][j] はColumns[i]とColumns[j]の相関係数で、定義できないセルはNaNです。
type CorrelationMatrix struct {
	Columns []string
	Values  [][]float64
}

// Correlations は列ごとの値列からピアソン相関行列を計算します。
// seriesはcolumnsと同じ数の等長の列を持つこと。分散がゼロの列が関わる係数は
// 対角成分を含めてNaNになり、分散のある列の対角成分は常に1です。
func Correlations(columns []string, series [][]float64) CorrelationMatrix {
	n := len(columns)
	values := make([][]float64, n)
	for i := range values {
		values[i] = make([]float64, n)
	}

	hasVariance := make([]bool, n)
	for i := 0; i < n; i++ {
		hasVariance[i] = !math.IsNaN(Pearson(series[i], series[i]))
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var r float64
			switch {
			case !hasVariance[i] || !hasVariance[j]:
				r = math.NaN()
			case i == j:
				r = 1
			default:
				r = Pearson(series[i], series[j])
			}
			values[i][j] = r
			values[j][i] = r
		}
	}

	return CorrelationMatrix{Columns: columns, Values: values}
}
