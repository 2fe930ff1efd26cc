// Package game 多骰子同步投掷：固定顺序的一组骰子，每次投掷所有骰子相同次数并保存结果矩阵
package game

import (
	"errors"
	"fmt"

	"github.com/tsinghua-fib-lab/montecarlo-sim/die"
)

const (
	FormatWide   = "wide"   // 宽表
	FormatNarrow = "narrow" // 窄表
)

var (
	// ErrInvalidFormat 展示格式非法
	ErrInvalidFormat = errors.New("invalid format, use 'wide' or 'narrow'")
	// ErrInvalidRolls 投掷次数非法
	ErrInvalidRolls = errors.New("rolls must be positive")
)

// Game 一组骰子的投掷游戏
// 功能：持有构造时固定的骰子列表，按批次投掷并保存最近一次的结果
// 说明：骰子只被读取抽样，可被多个游戏共享；每次Play整体替换结果
type Game struct {
	dice    []*die.Die // 骰子，构造后不再变化
	results *Results   // 最近一次投掷的结果
}

// New 创建游戏
func New(dice []*die.Die) *Game {
	return &Game{
		dice:    append([]*die.Die(nil), dice...),
		results: &Results{},
	}
}

// Dice 骰子列表的副本
func (g *Game) Dice() []*die.Die {
	return append([]*die.Die(nil), g.dice...)
}

// Play 投掷所有骰子
// 功能：按顺序将每个骰子投掷rolls次，组装为rolls行、len(dice)列的宽表
// 参数：rolls-投掷次数，必须为正
// 返回：错误信息
// 说明：任一骰子投掷失败则整批失败，之前的结果保持不变
func (g *Game) Play(rolls int) error {
	if rolls < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidRolls, rolls)
	}
	columns := make([][]die.Face, len(g.dice))
	for i, d := range g.dice {
		col, err := d.Roll(rolls)
		if err != nil {
			return fmt.Errorf("die %d: %w", i, err)
		}
		columns[i] = col
	}
	g.results = newResults(columns)
	log.Debugf("played %d rolls with %d dice", rolls, len(g.dice))
	return nil
}

// Results 最近一次投掷结果的宽表副本
func (g *Game) Results() *Results {
	return g.results.Clone()
}

// Show 按指定格式展示最近一次投掷的结果
// 参数：form-"wide"返回*Results，"narrow"返回Narrow
// 返回：表格、错误信息（ErrInvalidFormat）
func (g *Game) Show(form string) (Table, error) {
	switch form {
	case FormatWide:
		return g.results.Clone(), nil
	case FormatNarrow:
		return g.results.Narrow(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, form)
}
