package parameter

import (
	"time"
)

// FrameInterval is the display refresh period driven by the preview loops (~60 FPS)
const FrameInterval = 16 * time.Millisecond

// FrameRate matches FrameInterval, consumed by spring followers
const FrameRate = 60

// Hero field population per viewport class, fixed at mount
const (
	HeroParticleCountDesktop = 4500
	HeroParticleCountMobile  = 2000
)

// Hero field shape extents (world units, camera at z=8)
const (
	// HeroSphereRadius is the seed sphere radius on desktop
	HeroSphereRadius = 2.6
	// HeroMobileScale shrinks both shapes on narrow viewports
	HeroMobileScale = 0.75
)

// Hero field forces, default preset
const (
	// HeroStiffness is the spring-return gain toward the blended target
	HeroStiffness = 0.04
	// HeroFriction is the per-frame velocity multiplier, must stay below 1
	HeroFriction = 0.88
	// HeroPushStrength scales pointer repulsion at zero distance
	HeroPushStrength = 0.25
	// HeroInteractRadius is the pointer influence radius at progress 0
	HeroInteractRadius = 1.8
	// HeroInteractGrowth is added to the radius as progress reaches 1
	HeroInteractGrowth = 0.4
)

// Hero field forces, soft preset (second observed variant, equally valid)
const (
	HeroSoftStiffness    = 0.06
	HeroSoftFriction     = 0.8
	HeroSoftPushStrength = 0.3
)

// Hero group motion
const (
	// HeroBaseSpin is Y rotation per frame before any scroll
	HeroBaseSpin = 0.001
	// HeroSettleSpin is the fraction of HeroBaseSpin left at progress 1
	HeroSettleSpin = 0.15
	// HeroGlideX is the desktop group offset at progress 1
	HeroGlideX = -4.2
	// HeroGlideY is the mobile group offset at progress 1
	HeroGlideY = 2.4
	// HeroGlideFrequency is the angular frequency of the group follower spring
	HeroGlideFrequency = 6.0
	// HeroGlideDamping is the damping ratio of the group follower spring (1 = critical)
	HeroGlideDamping = 1.0
)

// Hero float drift (gentle bob on top of the scroll glide)
const (
	HeroFloatSpeed             = 1.2
	HeroFloatIntensity         = 0.3
	HeroFloatRotationIntensity = 0.3
	// HeroFloatAmplitude converts intensity into world units
	HeroFloatAmplitude = 0.1
)

// Hero point appearance handed to render sinks
const (
	HeroPointSize       = 0.04
	HeroPointOpacity    = 0.85
	HeroPointSizeGrowth = 0.5
	HeroOpacityFade     = 0.25
)
