package task

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/montecarlo-sim/die"
	"github.com/tsinghua-fib-lab/montecarlo-sim/game"
	"github.com/tsinghua-fib-lab/montecarlo-sim/utils/config"
)

var (
	log = logrus.WithField("module", "task")

	logLevels = map[string]logrus.Level{
		"trace":    logrus.TraceLevel,
		"debug":    logrus.DebugLevel,
		"info":     logrus.InfoLevel,
		"warn":     logrus.WarnLevel,
		"error":    logrus.ErrorLevel,
		"critical": logrus.FatalLevel,
		"off":      logrus.PanicLevel,
	}
)

// Context 投掷实验上下文
// 功能：包含一次实验的配置、骰子与游戏
// 说明：由配置构造，Run执行投掷并生成分析报告
type Context struct {
	// 运行时配置
	runtimeConfig *config.RuntimeConfig
	// 骰子，顺序与配置一致
	dice []*die.Die
	// 游戏
	game *game.Game
}

// NewContext 创建新的实验上下文
// 功能：根据配置初始化日志级别、骰子与游戏
// 参数：c-通过校验的配置
// 返回：实验上下文、错误信息
// 算法说明：
// 1. 设置日志级别（未配置则保持不变）
// 2. 确定种子：第i个骰子使用seed+i，未配置seed时以当前时间为基准
// 3. 逐个创建骰子并应用权重修改，任一失败则整体失败
// 4. 创建游戏
func NewContext(c config.Config) (*Context, error) {
	if c.Log.Level != "" {
		level, ok := logLevels[c.Log.Level]
		if !ok {
			return nil, fmt.Errorf("%w: log.level must be one of %v", config.ErrInvalidConfig, logLevels)
		}
		logrus.SetLevel(level)
	}

	seed := uint64(time.Now().UnixNano())
	if c.Control.Seed != nil {
		seed = *c.Control.Seed
	}

	dice := make([]*die.Die, len(c.Dice))
	for i, dc := range c.Dice {
		d, err := newDie(dc, seed+uint64(i))
		if err != nil {
			return nil, fmt.Errorf("dice[%d]: %w", i, err)
		}
		dice[i] = d
	}

	ctx := &Context{
		runtimeConfig: config.NewRuntimeConfig(c),
		dice:          dice,
		game:          game.New(dice),
	}
	log.Infof("Dice: %v", len(dice))
	log.Infof("Rolls: %v", c.Control.Rolls)
	return ctx, nil
}

// newDie 根据配置创建骰子并应用权重
func newDie(dc config.DieConfig, seed uint64) (*die.Die, error) {
	faces, err := die.ParseFaces(dc.Faces)
	if err != nil {
		return nil, err
	}
	d, err := die.New(faces, die.WithSeed(seed))
	if err != nil {
		return nil, err
	}
	for _, wc := range dc.Weights {
		face, err := die.ParseFace(wc.Face)
		if err != nil {
			return nil, err
		}
		if err := d.SetWeight(face, wc.Weight); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (ctx *Context) RuntimeConfig() *config.RuntimeConfig {
	return ctx.runtimeConfig
}

func (ctx *Context) Dice() []*die.Die {
	return append([]*die.Die(nil), ctx.dice...)
}

func (ctx *Context) Game() *game.Game {
	return ctx.game
}
