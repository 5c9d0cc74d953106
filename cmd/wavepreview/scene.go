package main

import (
	"math"

	"github.com/decker502/wavebanner/internal/wave"
	"github.com/decker502/wavebanner/pkg/config"
)

// 模板波形路径的轮廓近似（见 wave.DefaultShape.PathData）：
// 从 x=-160 开始，每 176 个单位一个周期，波峰 y=26，波谷 y=44
const (
	surfaceStartX  = -160.0
	surfaceEndX    = 192.0
	surfacePeriod  = 176.0
	surfaceCrestY  = 26.0
	surfaceTroughY = 44.0
)

// surfaceY 返回模板波形在局部坐标 x 处的上边缘 y，超出路径范围时 ok 为 false
func surfaceY(x float64) (y float64, ok bool) {
	if x < surfaceStartX || x > surfaceEndX {
		return 0, false
	}
	mid := (surfaceCrestY + surfaceTroughY) / 2
	amp := (surfaceTroughY - surfaceCrestY) / 2
	return mid + amp*math.Cos(2*math.Pi*(x-surfaceStartX)/surfacePeriod), true
}

// progress 返回动画在 clock 秒时的进度 [0,1)
//
// 负的 delay 表示动画在 clock=0 时已经运行了 -delay 秒。
func progress(clock, duration, delay float64) float64 {
	if !(duration > 0) {
		return 0
	}
	p := math.Mod(clock-delay, duration) / duration
	if p < 0 {
		p += 1
	}
	return p
}

// band 屏幕上的一个横向区域
type band struct {
	Top     float64
	Height  float64
	Flipped bool // 波浪区域旋转 180°
}

// sceneLayout 一次绘制的区域划分
type sceneLayout struct {
	Waves      []band
	Content    band
	HasContent bool
}

// layoutScene 按 position 划分区域
//
// 参数:
//   - pos: 波浪位置
//   - top: 横幅起始 y
//   - waveHeight: 单个波浪区域高度（像素）
//   - contentHeight: position=both 时内容区高度
func layoutScene(pos config.Position, top, waveHeight, contentHeight float64) sceneLayout {
	switch pos {
	case config.PositionBottom:
		return sceneLayout{Waves: []band{{Top: top, Height: waveHeight, Flipped: true}}}
	case config.PositionBoth:
		return sceneLayout{
			Waves: []band{
				{Top: top, Height: waveHeight},
				{Top: top + waveHeight + contentHeight, Height: waveHeight, Flipped: true},
			},
			Content:    band{Top: top + waveHeight, Height: contentHeight},
			HasContent: true,
		}
	default:
		return sceneLayout{Waves: []band{{Top: top, Height: waveHeight}}}
	}
}

// bandHeightPx 将波浪高度换算为预览像素，无法换算时使用默认 100px
func bandHeightPx(l wave.Length) float64 {
	if px, ok := l.Pixels(); ok && px > 0 {
		return px
	}
	return 100
}

// nextPosition 循环切换 top → bottom → both
func nextPosition(p config.Position) config.Position {
	switch p {
	case config.PositionTop:
		return config.PositionBottom
	case config.PositionBottom:
		return config.PositionBoth
	default:
		return config.PositionTop
	}
}
