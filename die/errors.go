package die

import "errors"

var (
	// ErrInvalidType 骰面或权重的类型非法（骰面类型不一致、零值骰面、非数值权重）
	ErrInvalidType = errors.New("invalid type")
	// ErrDuplicateFace 骰面重复
	ErrDuplicateFace = errors.New("faces must be unique")
	// ErrNoFaces 骰子没有骰面
	ErrNoFaces = errors.New("die must have at least one face")
	// ErrFaceNotFound 骰面不存在
	ErrFaceNotFound = errors.New("face not found in die faces")
	// ErrInvalidRolls 投掷次数非法
	ErrInvalidRolls = errors.New("rolls must be non-negative")
)
