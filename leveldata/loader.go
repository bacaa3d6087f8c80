package leveldata

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Tiled object layer names recognized by the loader
const (
	structureLayer = "Structure"
	obstacleLayer  = "Obstacles"
)

const defaultPixelsPerMeter = 32.0

// LoadBlueprint parses a TMX level into a Blueprint. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS. Castle pieces are objects on the
// "Structure" layer with material/keep/banner/weakpoint/connectedTo
// properties; the environment comes from map-level properties.
//
// Tiled uses pixel coordinates with y growing downward; the blueprint uses
// meters with y growing upward from the ground, so positions are scaled by
// the map's pixelsPerMeter property and flipped against the map height.
func LoadBlueprint(fsys fs.FS, tmxPath string) (*Blueprint, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	ppm := levelMap.Properties.GetFloat("pixelsPerMeter")
	if ppm == 0 {
		ppm = defaultPixelsPerMeter
	}
	mapHeightPx := float64(levelMap.Height * levelMap.TileHeight)

	bp := &Blueprint{
		Env: EnvSpec{
			GravityY:     levelMap.Properties.GetFloat("gravityY"),
			WindX:        levelMap.Properties.GetFloat("windX"),
			WindY:        levelMap.Properties.GetFloat("windY"),
			WindStrength: levelMap.Properties.GetFloat("windStrength"),
		},
	}

	if levelMap.Properties.GetBool("overrideLaunch") {
		bp.Launch = &LaunchDefaults{
			Pullback:          levelMap.Properties.GetFloat("launchPullback"),
			ReleaseAngle:      levelMap.Properties.GetFloat("launchAngle"),
			CounterweightMass: levelMap.Properties.GetFloat("launchCounterweight"),
			SlingLength:       levelMap.Properties.GetFloat("launchSlingLength"),
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case structureLayer:
			for _, o := range og.Objects {
				x, y, w, h := toWorldRect(o, ppm, mapHeightPx)
				bp.Nodes = append(bp.Nodes, NodeSpec{
					Name:     o.Name,
					X:        x,
					Y:        y,
					W:        w,
					H:        h,
					Rotation: o.Rotation,

					Material:  o.Properties.GetString("material"),
					Keep:      o.Properties.GetBool("keep"),
					Banner:    o.Properties.GetBool("banner"),
					WeakPoint: o.Properties.GetBool("weakpoint"),

					ConnectedTo: splitNames(o.Properties.GetString("connectedTo")),
					Joint:       o.Properties.GetString("joint"),
				})
			}
		case obstacleLayer:
			for _, o := range og.Objects {
				x, y, w, h := toWorldRect(o, ppm, mapHeightPx)
				bp.Obstacles = append(bp.Obstacles, ObstacleSpec{
					Name: o.Name,
					X:    x,
					Y:    y,
					W:    w,
					H:    h,
				})
			}
		}
	}

	return bp, nil
}

// toWorldRect converts a Tiled object rectangle to world meters with the
// origin at the bottom-left.
func toWorldRect(o *tiled.Object, ppm, mapHeightPx float64) (x, y, w, h float64) {
	x = o.X / ppm
	y = (mapHeightPx - (o.Y + o.Height)) / ppm
	w = o.Width / ppm
	h = o.Height / ppm
	return x, y, w, h
}

// splitNames parses a comma-separated connectedTo property
func splitNames(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}
