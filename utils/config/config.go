package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

// ErrInvalidConfig 配置无法解析或校验失败
var ErrInvalidConfig = errors.New("invalid config")

var validate = validator.New()

// RuntimeConfig 运行时配置
// 功能：存储通过校验的配置与全局控制配置
type RuntimeConfig struct {
	All Config  // 全部配置
	C   Control // 全局控制配置
}

// NewRuntimeConfig 根据配置初始化运行时配置
func NewRuntimeConfig(config Config) *RuntimeConfig {
	rc := &RuntimeConfig{}

	rc.All = config
	rc.C = config.Control

	return rc
}

// Load 解析并校验YAML配置
// 功能：严格模式解析YAML（未知字段报错），再按结构体标签校验
// 参数：data-YAML数据
// 返回：配置、错误信息（ErrInvalidConfig）
func Load(data []byte) (Config, error) {
	var c Config
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := validate.Struct(c); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return c, nil
}

// LoadFile 从文件加载配置
func LoadFile(path string) (Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config file load err: %w", err)
	}
	return Load(file)
}

// LoadBase64 从Base64编码的数据加载配置
func LoadBase64(data string) (Config, error) {
	file, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w: config data load err: %v", ErrInvalidConfig, err)
	}
	return Load(file)
}
