package parameter

// Logo silhouette region weights, summing to 1
const (
	SilhouetteRingWeight     = 0.20
	SilhouetteLeftBarWeight  = 0.30
	SilhouetteRightBarWeight = 0.30
	SilhouetteCrossbarWeight = 0.12
	SilhouettePeakFillWeight = 0.08
)

// Logo silhouette geometry at scale 1 (world units)
const (
	SilhouetteRingRadius  = 2.6
	SilhouetteRingJitter  = 0.08
	SilhouetteApexY       = 1.6
	SilhouetteBaseY       = -1.5
	SilhouetteBaseHalfW   = 1.3
	SilhouetteBarJitter   = 0.14
	SilhouetteBarTaper    = 0.6
	SilhouetteCrossbarY   = -0.2
	SilhouetteCrossHalfW  = 0.65
	SilhouetteCrossJitter = 0.06
	SilhouettePeakDepth   = 0.5
	SilhouetteDepthJitter = 0.12
)
