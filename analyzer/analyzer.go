// Package analyzer 投掷结果分析：头奖、每轮骰面计数、组合与排列计数
package analyzer

import (
	"errors"
	"slices"
	"strconv"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/montecarlo-sim/die"
	"github.com/tsinghua-fib-lab/montecarlo-sim/game"
)

// ErrInvalidGame 传入的不是有效的游戏
var ErrInvalidGame = errors.New("the input must be a game")

// Analyzer 投掷结果分析器
// 功能：在构造时复制游戏最近一次的宽表结果，之后的所有统计都基于该快照
// 说明：游戏再次投掷不会影响已构造的分析器
type Analyzer struct {
	results *game.Results
}

// New 创建分析器
// 参数：g-游戏，为nil时返回ErrInvalidGame
func New(g *game.Game) (*Analyzer, error) {
	if g == nil {
		return nil, ErrInvalidGame
	}
	a := &Analyzer{results: g.Results()}
	rows, cols := a.results.Shape()
	log.Debugf("analyzer snapshot %dx%d", rows, cols)
	return a, nil
}

// Results 快照的副本
func (a *Analyzer) Results() *game.Results {
	return a.results.Clone()
}

// Jackpot 头奖次数：所有骰子投出相同骰面的轮数
// 说明：只有一个骰子时每一轮都是头奖
func (a *Analyzer) Jackpot() int {
	return lo.CountBy(a.results.Rows(), func(row []die.Face) bool {
		return len(lo.Uniq(row)) == 1
	})
}

// FaceCounts 每轮骰面计数表
// 说明：行为快照中出现过的所有骰面（按骰面顺序），列为投掷序号，缺失的组合记为0
type FaceCounts struct {
	Faces  []die.Face // 行索引
	Counts [][]int    // Counts[i][roll] 为骰面Faces[i]在第roll轮出现的次数
	rolls  int
}

func (c *FaceCounts) Shape() (int, int) {
	return len(c.Faces), c.rolls
}

// Columns 列名为投掷序号
func (c *FaceCounts) Columns() []string {
	return lo.Times(c.rolls, strconv.Itoa)
}

// Count 骰面face在第roll轮出现的次数，face未出现过时返回0
func (c *FaceCounts) Count(face die.Face, roll int) int {
	i := slices.IndexFunc(c.Faces, func(f die.Face) bool { return f == face })
	if i < 0 {
		return 0
	}
	return c.Counts[i][roll]
}

// FaceCountsPerRoll 计算每轮各骰面出现的次数
// 算法说明：
// 1. 收集快照中出现过的所有骰面并排序，作为行索引
// 2. 逐行统计各骰面出现次数，写入对应列
func (a *Analyzer) FaceCountsPerRoll() *FaceCounts {
	rows := a.results.Rows()
	faces := lo.Uniq(lo.Flatten(rows))
	slices.SortFunc(faces, die.Face.Compare)
	index := lo.SliceToMap(lo.Range(len(faces)), func(i int) (die.Face, int) {
		return faces[i], i
	})
	counts := lo.Map(faces, func(_ die.Face, _ int) []int {
		return make([]int, len(rows))
	})
	for roll, row := range rows {
		for f, n := range lo.CountValues(row) {
			counts[index[f]][roll] = n
		}
	}
	return &FaceCounts{Faces: faces, Counts: counts, rolls: len(rows)}
}

// Count 一种组合（或排列）及其出现次数
type Count struct {
	Faces []die.Face
	Count int
}

// Counts 按出现次数降序排列的计数表，次数相同时按骰面字典序
type Counts []Count

func (c Counts) Shape() (int, int) {
	return len(c), 2
}

func (c Counts) Columns() []string {
	return []string{"faces", "count"}
}

// Total 所有计数之和，等于投掷次数
func (c Counts) Total() int {
	return lo.SumBy(c, func(x Count) int { return x.Count })
}

// ComboCount 组合计数（与顺序无关）
// 说明：每轮的骰面排序后作为组合
func (a *Analyzer) ComboCount() Counts {
	rows := a.results.Rows()
	for _, row := range rows {
		slices.SortFunc(row, die.Face.Compare)
	}
	return countDistinct(rows)
}

// PermutationCount 排列计数（与顺序有关）
// 说明：每轮的骰面按骰子顺序作为排列，相同骰面集合但顺序不同视为不同排列
func (a *Analyzer) PermutationCount() Counts {
	return countDistinct(a.results.Rows())
}

// countDistinct 统计不同行的出现次数
// 算法说明：
// 1. 按字典序排序所有行，相同的行相邻
// 2. 顺序扫描合并相邻的相同行
// 3. 按次数稳定降序排序，次数相同的保持字典序
func countDistinct(rows [][]die.Face) Counts {
	slices.SortFunc(rows, die.CompareFaces)
	var counts Counts
	for _, row := range rows {
		if n := len(counts); n > 0 && die.CompareFaces(counts[n-1].Faces, row) == 0 {
			counts[n-1].Count++
			continue
		}
		counts = append(counts, Count{Faces: row, Count: 1})
	}
	slices.SortStableFunc(counts, func(x, y Count) int {
		return y.Count - x.Count
	})
	return counts
}
