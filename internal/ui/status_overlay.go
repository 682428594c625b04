// internal/ui/status_overlay.go
package ui

import (
	"go-space-invaders/internal/config"
	"go-space-invaders/pkg/geom"
	"go-space-invaders/pkg/render"
	"math"
	"strconv"
)

// Status — данные, которые показывает оверлей.
type Status struct {
	Score    int
	Wave     int
	Lives    int
	MaxLives int
	Energy   float64
	CoolDown bool
	GameOver bool
}

// StatusOverlay рисует счёт, номер волны, жизни, энергию и экран проигрыша.
type StatusOverlay struct {
	Width, Height float64
	textStyle     render.TextOptions
}

// NewStatusOverlay создает оверлей для поля заданного размера.
func NewStatusOverlay(width, height float64) *StatusOverlay {
	return &StatusOverlay{
		Width:  width,
		Height: height,
		textStyle: render.TextOptions{
			Size:         config.StatusFontSize,
			Align:        render.AlignLeft,
			Color:        config.TextLightColor,
			ShadowColor:  config.TextShadowColor,
			ShadowOffset: config.TextShadowOffset,
		},
	}
}

func (o *StatusOverlay) Draw(surface render.Surface, st Status) {
	surface.DrawText("Score: "+strconv.Itoa(st.Score), config.StatusX, config.ScoreY, o.textStyle)
	surface.DrawText("Wave: "+strconv.Itoa(st.Wave), config.StatusX, config.WaveY, o.textStyle)

	o.drawLives(surface, st.Lives, st.MaxLives)
	o.drawEnergy(surface, st.Energy, st.CoolDown)

	if st.GameOver {
		big := o.textStyle
		big.Align = render.AlignCenter
		big.Size = config.GameOverFontSize
		surface.DrawText("GAME OVER!", o.Width*0.5, o.Height*0.5, big)

		small := big
		small.Size = config.RestartFontSize
		surface.DrawText("Press R to restart!", o.Width*0.5, o.Height*0.5+30, small)
	}
}

// drawLives рисует пустые рамки для максимума и закрашенные для текущих жизней.
func (o *StatusOverlay) drawLives(surface render.Surface, lives, maxLives int) {
	for i := 0; i < maxLives; i++ {
		surface.StrokeRect(lifePip(i), config.LifePipColor, config.LifePipLineWidth)
	}
	for i := 0; i < lives && i < maxLives; i++ {
		surface.FillRect(lifePip(i), config.LifePipColor)
	}
}

func lifePip(i int) geom.Rect {
	return geom.Rect{
		X: config.StatusX + config.LifePipStep*float64(i),
		Y: config.LifePipY,
		W: config.LifePipWidth,
		H: config.LifePipHeight,
	}
}

// drawEnergy рисует полоску из делений по одному на единицу энергии.
// Во время перегрева полоска красная.
func (o *StatusOverlay) drawEnergy(surface render.Surface, energy float64, coolDown bool) {
	barColor := config.EnergyColor
	if coolDown {
		barColor = config.CoolDownColor
	}
	bars := int(math.Ceil(energy))
	for i := 0; i < bars; i++ {
		surface.FillRect(geom.Rect{
			X: config.StatusX + config.EnergyBarStep*float64(i),
			Y: config.EnergyBarY,
			W: config.EnergyBarStep,
			H: config.EnergyBarHeight,
		}, barColor)
	}
}
