package models

import (
	"fmt"
	"hash/fnv"
)

var colorCodes = map[string]string{
	"White":           "#FFFFFF",
	"Red":             "#FF0000",
	"Oak Brown":       "#8B4513",
	"Silver":          "#C0C0C0",
	"Light Grey":      "#D3D3D3",
	"Beige":           "#F5F5DC",
	"Dark Blue":       "#00008B",
	"Walnut":          "#5C4033",
	"Teal":            "#008080",
	"Charcoal":        "#36454F",
	"Blue":            "#0000FF",
	"Cream":           "#FFFDD0",
	"Green":           "#008000",
	"Yellow":          "#FFFF00",
	"Olive":           "#808000",
	"Ivory":           "#FFFFF0",
	"Ocean Blue":      "#0077BE",
	"Forest Green":    "#228B22",
	"Pure White":      "#FFFFFF",
	"Cream White":     "#F5F5DC",
	"Royal Purple":    "#663399",
	"Sunset Orange":   "#FF6B35",
	"Cool Blue":       "#87CEEB",
	"Mint Green":      "#98FB98",
	"Royal Blue":      "#4169E1",
	"Pearl White":     "#F8F6F0",
	"Monsoon Grey":    "#708090",
	"Coastal Green":   "#2E8B57",
	"Desert Beige":    "#EDC9AF",
	"Sandstone Brown": "#D2B48C",
}

// ColorCode resolves a color name to its hex code. Unregistered names get a
// deterministic pseudo-color derived from the name hash so repeated runs over
// the same dataset always produce identical output.
func ColorCode(colorName string) string {
	if colorName == "" {
		return "#000000"
	}
	if code, ok := colorCodes[colorName]; ok {
		return code
	}
	h := fnv.New32a()
	h.Write([]byte(colorName))
	return fmt.Sprintf("#%06X", h.Sum32()&0xFFFFFF)
}
