// Package die 带权骰子：固定的一组唯一骰面，每个骰面有可修改的权重，支持有放回带权抽样
package die

import (
	"fmt"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/montecarlo-sim/utils/container"
	"github.com/tsinghua-fib-lab/montecarlo-sim/utils/randengine"
)

const defaultWeight = 1.0

// FaceWeight 骰面与其当前权重
type FaceWeight struct {
	Face   Face
	Weight float64
}

// Die 带权骰子
// 功能：保存构造时固定的骰面集合与每个骰面的权重，按权重进行有放回抽样
// 说明：权重表的键集合始终等于骰面集合；骰面顺序即插入顺序，用于确定性展示。
// 权重无需归一化，抽样时按相对权重计算概率
type Die struct {
	faces   []Face                               // 骰面，构造后不再变化
	weights *container.OrderedMap[Face, float64] // 骰面 -> 权重
	engine  *randengine.Engine                   // 随机数引擎
	mu      sync.Mutex                           // 保护权重表与引擎，权重更新不会与抽样并发
}

// Option 骰子构造选项
type Option func(*Die)

// WithSeed 使用指定种子创建独立的随机数引擎
func WithSeed(seed uint64) Option {
	return func(d *Die) {
		d.engine = randengine.New(seed)
	}
}

// WithEngine 使用外部提供的随机数引擎
func WithEngine(engine *randengine.Engine) Option {
	return func(d *Die) {
		d.engine = engine
	}
}

// New 创建骰子
// 功能：校验骰面并初始化所有权重为1.0
// 参数：faces-骰面列表，opts-构造选项
// 返回：骰子指针、错误信息
// 算法说明：
// 1. 骰面为空返回ErrNoFaces
// 2. 零值骰面或骰面类型不一致返回ErrInvalidType
// 3. 骰面重复返回ErrDuplicateFace
// 4. 未指定随机数引擎时使用当前时间作为种子
func New(faces []Face, opts ...Option) (*Die, error) {
	if len(faces) == 0 {
		return nil, ErrNoFaces
	}
	if err := checkHomogeneous(faces); err != nil {
		return nil, err
	}
	weights := container.NewOrderedMap[Face, float64](len(faces))
	for _, f := range faces {
		if !weights.Set(f, defaultWeight) {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateFace, f)
		}
	}
	d := &Die{
		faces:   append([]Face(nil), faces...),
		weights: weights,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.engine == nil {
		d.engine = randengine.New(uint64(time.Now().UnixNano()))
	}
	log.Debugf("new die with %d %v faces", len(faces), faces[0].Kind())
	return d, nil
}

// NewInts 创建整数骰面的骰子
func NewInts(faces []int, opts ...Option) (*Die, error) {
	return New(IntFaces(faces...), opts...)
}

// NewStrings 创建字符串骰面的骰子
func NewStrings(faces []string, opts ...Option) (*Die, error) {
	return New(StringFaces(faces...), opts...)
}

// Faces 骰面列表的副本
func (d *Die) Faces() []Face {
	return append([]Face(nil), d.faces...)
}

// Len 骰面个数
func (d *Die) Len() int {
	return len(d.faces)
}

// Weight 获取骰面当前权重
func (d *Die) Weight(face Face) (float64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	w, ok := d.weights.Get(face)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrFaceNotFound, face)
	}
	return w, nil
}

// ChangeWeight 修改骰面权重
// 功能：覆盖指定骰面的权重，不做归一化
// 参数：face-骰面，weight-新权重
// 返回：骰面不存在时返回ErrFaceNotFound
// 说明：负数或全零权重在此处不拒绝，抽样时返回randengine.ErrInvalidWeights
func (d *Die) ChangeWeight(face Face, weight float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.weights.Has(face) {
		return fmt.Errorf("%w: %v", ErrFaceNotFound, face)
	}
	d.weights.Set(face, weight)
	log.Debugf("face %v weight -> %v", face, weight)
	return nil
}

// SetWeight 以动态类型的权重修改骰面权重
// 功能：接受Go的整数与浮点类型，其余类型返回ErrInvalidType
// 说明：先检查权重类型，再检查骰面是否存在
func (d *Die) SetWeight(face Face, weight any) error {
	w, err := parseWeight(weight)
	if err != nil {
		return err
	}
	return d.ChangeWeight(face, w)
}

// Roll 投掷骰子
// 功能：按当前权重进行rolls次独立的有放回抽样
// 参数：rolls-投掷次数，0返回空结果
// 返回：长度为rolls的骰面列表、错误信息
// 算法说明：
// 1. 按骰面顺序读取权重，计算累积权重（同时校验权重合法性）
// 2. 每次抽样在累积权重上二分查找
// 说明：抽样期间持有锁，权重表只读
func (d *Die) Roll(rolls int) ([]Face, error) {
	if rolls < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRolls, rolls)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	cdf, err := randengine.CumulativeWeights(d.weights.Values())
	if err != nil {
		return nil, err
	}
	outcomes := make([]Face, rolls)
	for i := range outcomes {
		outcomes[i] = d.faces[d.engine.SampleCumulative(cdf)]
	}
	return outcomes, nil
}

// Show 当前骰面与权重的副本
func (d *Die) Show() []FaceWeight {
	d.mu.Lock()
	defer d.mu.Unlock()
	return lo.Map(d.weights.Keys(), func(f Face, _ int) FaceWeight {
		w, _ := d.weights.Get(f)
		return FaceWeight{Face: f, Weight: w}
	})
}

func parseWeight(weight any) (float64, error) {
	switch w := weight.(type) {
	case float64:
		return w, nil
	case float32:
		return float64(w), nil
	case int:
		return float64(w), nil
	case int8:
		return float64(w), nil
	case int16:
		return float64(w), nil
	case int32:
		return float64(w), nil
	case int64:
		return float64(w), nil
	case uint:
		return float64(w), nil
	case uint8:
		return float64(w), nil
	case uint16:
		return float64(w), nil
	case uint32:
		return float64(w), nil
	case uint64:
		return float64(w), nil
	}
	return 0, fmt.Errorf("%w: weight %v of type %T is not numeric", ErrInvalidType, weight, weight)
}
