// internal/config/config.go
package config

import "image/color"

const (
	FieldWidth  = 600
	FieldHeight = 800
	MaxDeltaMs  = 100.0 // Защита от скачков после сворачивания окна

	SpriteInterval = 150.0 // мс между тиками анимации

	ProjectilePoolSize = 15
	ProjectileWidth    = 3.0
	ProjectileHeight   = 40.0
	ProjectileSpeed    = 20.0 // пикселей за кадр

	PlayerWidth        = 140.0
	PlayerHeight       = 120.0
	PlayerSpeed        = 5.0
	PlayerLives        = 3
	PlayerMaxLives     = 10
	PlayerEnergy       = 50.0
	PlayerMaxEnergy    = 100.0
	PlayerEnergyRegen  = 0.05
	CoolDownEnter      = 1.0 // Ниже этого значения энергии включается перегрев
	CoolDownExitFactor = 0.2 // Доля от максимума, выше которой перегрев снимается
	LaserMinEnergy     = 1.0
	LaserBottomMargin  = 50.0

	EnemySize        = 80.0
	WaveEntrySpeed   = 5.0
	WaveSpeedX       = 1.0
	InitialColumns   = 2
	InitialRows      = 2
	MaxColumnsFactor = 0.8 // Формация не шире 80% поля
	MaxRowsFactor    = 0.6 // и не выше 60%
	GrowColumnChance = 0.5
)

// Индексы кадров спрайта корабля
const (
	PlayerFrameIdle = iota
	PlayerFramePrimary
	PlayerFrameLightLaser
	PlayerFrameHeavyLaser
)

// Индексы кадров реактивных струй
const (
	JetsFrameLeft = iota
	JetsFrameIdle
	JetsFrameRight
)

// Имена листов спрайтов
const (
	SheetPlayer = "player"
	SheetJets   = "player_jets"
)

// Status overlay layout
const (
	StatusX          = 20.0
	ScoreY           = 40.0
	WaveY            = 80.0
	LifePipY         = 100.0
	LifePipStep      = 20.0
	LifePipWidth     = 10.0
	LifePipHeight    = 15.0
	EnergyBarY       = 130.0
	EnergyBarStep    = 2.0
	EnergyBarHeight  = 15.0
	StatusFontSize   = 30.0
	GameOverFontSize = 100.0
	RestartFontSize  = 20.0
	TextShadowOffset = 2.0
)

var (
	BackgroundColor  = color.RGBA{0, 0, 0, 255}
	TextLightColor   = color.RGBA{255, 255, 255, 255}
	TextShadowColor  = color.RGBA{0, 0, 0, 255}
	ProjectileColor  = color.RGBA{255, 215, 0, 255} // gold
	LaserColor       = color.RGBA{255, 215, 0, 255}
	LaserCoreColor   = color.RGBA{255, 255, 255, 255}
	EnergyColor      = color.RGBA{255, 215, 0, 255}
	CoolDownColor    = color.RGBA{255, 0, 0, 255}
	LifePipColor     = color.RGBA{255, 255, 255, 255}
	LaserCoreFactor  = 0.6
	LifePipLineWidth = float32(1.0)
)
