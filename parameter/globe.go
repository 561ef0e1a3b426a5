package parameter

// Not-found globe
const (
	GlobeParticleCount = 300
	// GlobeRadiusFactor scales min(width, height) into the globe radius
	GlobeRadiusFactor = 0.28
	// GlobeSpin is the per-frame rotation of the whole globe and base theta drift
	GlobeSpin = 0.0025
	// GlobeDriftRange is the spread of per-particle extra theta speed, centered on 0
	GlobeDriftRange = 0.0018
	GlobeSizeMin    = 0.3
	GlobeSizeRange  = 1.8
	GlobeOpacityMin = 0.2
	// GlobeOpacityRange is added to GlobeOpacityMin at most
	GlobeOpacityRange = 0.75
	GlobeSizeBoost    = 1.6
	GlobeBlueBase     = 200
	GlobeBlueRange    = 55
	// GlobeGlowFactor is the halo radius relative to the globe radius
	GlobeGlowFactor = 1.4
)
