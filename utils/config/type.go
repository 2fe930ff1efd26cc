package config

// WeightConfig 单个骰面的权重
// 说明：face与weight保持YAML解码后的动态类型，由die包校验（骰面只能是整数或字符串，权重只能是数值）
type WeightConfig struct {
	Face   interface{} `yaml:"face"`   // 骰面
	Weight interface{} `yaml:"weight"` // 权重
}

// DieConfig 骰子配置
type DieConfig struct {
	Faces   []interface{}  `yaml:"faces" validate:"required,min=1"` // 骰面列表，类型必须一致
	Weights []WeightConfig `yaml:"weights,omitempty"`               // 权重修改，未列出的骰面权重为1
}

// Control 实验控制配置
type Control struct {
	Rolls int     `yaml:"rolls" validate:"min=1"` // 投掷次数
	Seed  *uint64 `yaml:"seed,omitempty"`         // 随机种子，第i个骰子使用seed+i；为空则使用当前时间
}

// Log 日志配置
type Log struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error critical off"` // 日志级别
}

// Config YAML配置文件的根结构
// 功能：描述一次投掷实验：骰子、投掷次数、随机种子、日志级别
type Config struct {
	Control Control     `yaml:"control"`                             // 实验控制
	Log     Log         `yaml:"log,omitempty"`                       // 日志
	Dice    []DieConfig `yaml:"dice" validate:"required,min=1,dive"` // 骰子
}
