/*
Copyright © 2018 the Planar authors.
This file is part of Planar.

Planar is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Planar is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Planar.  If not, see <http://www.gnu.org/licenses/>.
*/

package planarutil

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/ctessum/geom/encoding/geojson"
	"github.com/lnashier/viper"
	"github.com/spatialmodel/planar"
)

// factoryFromConfig builds the geometry factory described by the
// configuration.
func factoryFromConfig(cfg *viper.Viper) *planar.GeometryFactory {
	gf := planar.NewGeometryFactory()
	gf.PrecisionModel.Scale = cfg.GetFloat64("scale")
	return gf
}

// ReadGeometry reads one GeoJSON geometry from a file.
func ReadGeometry(path string, gf *planar.GeometryFactory) (planar.Geom, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("planar: opening geometry file: %v", err)
	}
	defer f.Close()
	data, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("planar: reading geometry file %s: %v", path, err)
	}
	g, err := geojson.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("planar: decoding %s: %v", path, err)
	}
	return FromGeom(g, gf)
}

func readGeometryPair(pathA, pathB string, gf *planar.GeometryFactory) (a, b planar.Geom, err error) {
	if a, err = ReadGeometry(pathA, gf); err != nil {
		return nil, nil, err
	}
	if b, err = ReadGeometry(pathB, gf); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// WriteGeometry writes a geometry to a file as GeoJSON.
func WriteGeometry(path string, g planar.Geom) error {
	eg, err := ToGeom(g)
	if err != nil {
		return err
	}
	data, err := geojson.Encode(eg)
	if err != nil {
		return fmt.Errorf("planar: encoding geometry: %v", err)
	}
	return ioutil.WriteFile(path, data, 0644)
}
