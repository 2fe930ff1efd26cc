// 随机数引擎，包装了golang.org/x/exp/rand，提供带权离散分布抽样
package randengine

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"sort"
	"sync"

	"golang.org/x/exp/rand"
)

var (
	seedOffset = flag.Uint64("rand.seed_offset", 0, "seed offset") // 种子偏移量，用于调整随机数生成
)

// ErrInvalidWeights 权重非法：存在负数、NaN、Inf，或全部为0
var ErrInvalidWeights = errors.New("weights must be finite, non-negative and not all zero")

// Engine 随机数引擎
// 功能：提供可复现的随机数生成功能，支持带权离散抽样
// 说明：基于golang.org/x/exp/rand库，每个骰子持有独立的引擎实例
type Engine struct {
	*rand.Rand            // 底层随机数生成器
	mtx        sync.Mutex // 互斥锁，用于线程安全操作
}

// New 创建随机数引擎
// 功能：初始化一个新的随机数引擎实例
// 参数：seed-随机数种子
// 返回：随机数引擎指针
// 说明：种子偏移量允许在不修改代码的情况下调整随机数序列
func New(seed uint64) *Engine {
	return &Engine{Rand: rand.New(rand.NewSource(seed + *seedOffset))}
}

// CumulativeWeights 计算累积权重
// 功能：校验权重并生成未归一化的累积分布
// 参数：weight-权重数组，每个元素表示对应索引的相对权重（无需归一化）
// 返回：累积权重数组（最后一个元素为总权重）、错误信息
// 算法说明：
// 1. 校验：任何负数、NaN、Inf权重均非法
// 2. 累加：逐项累加得到累积分布
// 3. 总权重为0时非法（无可抽取的结果）
func CumulativeWeights(weight []float64) ([]float64, error) {
	cdf := make([]float64, len(weight))
	sum := 0.
	for i, w := range weight {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: weight[%d] = %v", ErrInvalidWeights, i, w)
		}
		sum += w
		cdf[i] = sum
	}
	if sum <= 0 || math.IsInf(sum, 0) {
		return nil, fmt.Errorf("%w: total weight %v", ErrInvalidWeights, sum)
	}
	return cdf, nil
}

// SampleCumulative 按累积权重抽样一次（非线程安全）
// 功能：根据CumulativeWeights的结果生成一个离散随机索引
// 参数：cdf-累积权重数组，必须来自CumulativeWeights
// 返回：随机生成的索引值（0到len(cdf)-1）
// 算法说明：
// 1. 在[0, 总权重)范围内生成随机数
// 2. 二分查找第一个累积权重严格大于随机数的位置，权重为0的项永远不会被选中
// 3. 浮点误差导致越界时，回退到最后一个权重为正的项
func (e *Engine) SampleCumulative(cdf []float64) int {
	total := cdf[len(cdf)-1]
	random := total * e.Float64()
	i := sort.Search(len(cdf), func(i int) bool { return cdf[i] > random })
	if i < len(cdf) {
		return i
	}
	return lastPositive(cdf)
}

// SampleCumulativeSafe 按累积权重抽样一次（线程安全）
func (e *Engine) SampleCumulativeSafe(cdf []float64) int {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	return e.SampleCumulative(cdf)
}

// DiscreteDistribution 按给定权重生成随机索引（非线程安全）
// 功能：单次抽样的便捷方法，等价于CumulativeWeights+SampleCumulative
// 参数：weight-权重数组
// 返回：随机生成的索引值、错误信息
func (e *Engine) DiscreteDistribution(weight []float64) (int, error) {
	cdf, err := CumulativeWeights(weight)
	if err != nil {
		return -1, err
	}
	return e.SampleCumulative(cdf), nil
}

// lastPositive 最后一个权重为正的索引
func lastPositive(cdf []float64) int {
	for i := len(cdf) - 1; i > 0; i-- {
		if cdf[i] > cdf[i-1] {
			return i
		}
	}
	return 0
}
