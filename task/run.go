package task

import (
	"github.com/tsinghua-fib-lab/montecarlo-sim/analyzer"
)

// Report 一次实验的分析报告
type Report struct {
	Rolls        int                  // 投掷次数
	Dice         int                  // 骰子个数
	Jackpots     int                  // 头奖次数
	FaceCounts   *analyzer.FaceCounts // 每轮骰面计数
	Combos       analyzer.Counts      // 组合计数
	Permutations analyzer.Counts      // 排列计数
}

// Run 运行实验
// 功能：按配置的次数投掷所有骰子，并对结果进行全部分析
// 返回：分析报告、错误信息
// 说明：可重复调用，每次都是一批新的投掷
func (ctx *Context) Run() (*Report, error) {
	rolls := ctx.runtimeConfig.C.Rolls
	if err := ctx.game.Play(rolls); err != nil {
		return nil, err
	}
	a, err := analyzer.New(ctx.game)
	if err != nil {
		return nil, err
	}
	report := &Report{
		Rolls:        rolls,
		Dice:         len(ctx.dice),
		Jackpots:     a.Jackpot(),
		FaceCounts:   a.FaceCountsPerRoll(),
		Combos:       a.ComboCount(),
		Permutations: a.PermutationCount(),
	}
	log.Infof(
		"experiment complete: rolls=%d jackpots=%d combos=%d permutations=%d",
		report.Rolls, report.Jackpots, len(report.Combos), len(report.Permutations),
	)
	if len(report.Combos) > 0 {
		top := report.Combos[0]
		log.Debugf("most common combination %v x%d", top.Faces, top.Count)
	}
	return report, nil
}
