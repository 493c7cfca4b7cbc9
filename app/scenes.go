package app

import (
	"helios/heliogl"
	"helios/planet"
)

// sceneTable maps scene index 1..7 to its planet configuration. The table is
// fixed at build time; user input only selects between entries.
var sceneTable = [7]planet.Config{
	{
		Type:      planet.TypeSun,
		Name:      "Sun",
		Scale:     4,
		Octaves:   4,
		Amplitude: 0.6,
		SpinSpeed: 0.002,
	},
	{
		Type:      planet.TypeRocky,
		Name:      "Terra",
		Ocean:     true,
		Base:      heliogl.RGB(0, 105, 148),  // ocean
		Mid:       heliogl.RGB(34, 139, 34),  // land
		High:      heliogl.RGB(255, 255, 255), // clouds
		Scale:     7.2,
		Octaves:   3,
		Amplitude: 0.5,
		SpinSpeed: 0.01,
	},
	{
		Type:      planet.TypeGas,
		Name:      "Gas giant",
		Base:      heliogl.RGB(139, 69, 19),
		Mid:       heliogl.RGB(205, 133, 63),
		High:      heliogl.RGB(222, 184, 135),
		Scale:     4,
		Octaves:   2,
		Amplitude: 0.4,
		SpinSpeed: 0.015,
	},
	{
		Type:       planet.TypeRinged,
		Name:       "Ringed giant",
		Base:       heliogl.RGB(189, 155, 107),
		Mid:        heliogl.RGB(210, 180, 140),
		High:       heliogl.RGB(255, 222, 173),
		Scale:      3.5,
		Octaves:    2,
		Amplitude:  0.3,
		SpinSpeed:  0.012,
		Ring:       true,
		RingInner:  1.3,
		RingOuter:  2.2,
		RingColor:  heliogl.RGB(255, 220, 80),
		RingShadow: heliogl.RGB(150, 120, 60),
	},
	{
		Type:            planet.TypeRockyMoon,
		Name:            "Red planet",
		Base:            heliogl.RGB(139, 69, 19),
		Mid:             heliogl.RGB(205, 92, 92),
		High:            heliogl.RGB(255, 160, 122),
		Scale:           10,
		Octaves:         3,
		Amplitude:       0.5,
		SpinSpeed:       0.008,
		Moon:            true,
		MoonOrbitRadius: 2.2,
		MoonScale:       0.35,
		MoonOrbitSpeed:  0.01,
	},
	{
		Type:      planet.TypeIcy,
		Name:      "Ice world",
		Base:      heliogl.RGB(173, 216, 230),
		High:      heliogl.RGB(255, 255, 255),
		Mid:       heliogl.RGB(200, 230, 240),
		Scale:     5,
		Octaves:   2,
		Amplitude: 0.2,
		SpinSpeed: 0.006,
	},
	{
		Type:      planet.TypeVolcanic,
		Name:      "Volcanic world",
		Base:      heliogl.RGB(50, 50, 50),
		Mid:       heliogl.RGB(120, 60, 30),
		High:      heliogl.RGB(255, 100, 0), // lava
		Scale:     15,
		Octaves:   3,
		Amplitude: 0.8,
		SpinSpeed: 0.009,
	},
}

// sceneCount is the number of selectable scenes.
const sceneCount = len(sceneTable)

// sceneConfig returns the configuration for a 1-based scene index, or nil
// when the index is out of range.
func sceneConfig(n int) *planet.Config {
	if n < 1 || n > sceneCount {
		return nil
	}
	return &sceneTable[n-1]
}
