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

// Package planarutil provides the configuration and command-line
// interface for the planar geometry engine.
package planarutil

import (
	"fmt"
	"time"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/planar"
	"github.com/spatialmodel/planar/prep"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var logger *logrus.Logger

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	})

	// Options are the configuration options available to Planar.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "prepared",
			usage: `
              prepared specifies whether to evaluate predicates through a
              prepared copy of the first geometry. Results are identical;
              prepared evaluation is faster when the same geometry is
              tested many times.`,
			shorthand:  "p",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{evalCmd.Flags()},
		},
		{
			name: "pattern",
			usage: `
              pattern gives a 9-character DE-9IM pattern over the alphabet
              {T, F, *, 0, 1, 2} to match the computed intersection matrix
              against. When empty, only the matrix is printed.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{relateCmd.Flags()},
		},
		{
			name: "scale",
			usage: `
              scale sets the precision model scale factor: coordinates read
              from input files are rounded to 1/scale grid units. The
              default of 0 keeps full floating-point precision.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
	}

	Cfg = viper.New()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic(fmt.Errorf("planar: invalid argument type: %T", option.defaultVal))
			}
		}
		Cfg.BindPFlag(option.name, option.flagsets[0].Lookup(option.name))
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(relateCmd)
	Root.AddCommand(evalCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("planar: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "planar",
	Short: "A two-dimensional geometry engine.",
	Long: `Planar evaluates topological relationships and set operations
between two-dimensional geometries read from GeoJSON files.
Use the subcommands specified below to access the functionality.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'PLANAR_var' where 'var' is
the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of Planar.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Planar v%s\n", planar.Version)
	},
	DisableAutoGenTag: true,
}

var relateCmd = &cobra.Command{
	Use:   "relate [geometry file A] [geometry file B]",
	Short: "Compute the DE-9IM intersection matrix of two geometries.",
	Long: `relate computes the dimensionally extended nine-intersection
matrix of two geometries and prints it as a 9-character string. When
--pattern is given, the matrix is instead matched against the pattern
and 'true' or 'false' is printed.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, b, err := readGeometryPair(args[0], args[1], factoryFromConfig(Cfg))
		if err != nil {
			return err
		}
		if pattern := Cfg.GetString("pattern"); pattern != "" {
			match, err := planar.RelatePattern(a, b, pattern)
			if err != nil {
				return err
			}
			fmt.Println(cast.ToString(match))
			return nil
		}
		im, err := planar.Relate(a, b)
		if err != nil {
			return err
		}
		fmt.Println(im.String())
		return nil
	},
	DisableAutoGenTag: true,
}

var evalCmd = &cobra.Command{
	Use:   "eval [predicate] [geometry file A] [geometry file B]",
	Short: "Evaluate a named spatial predicate.",
	Long: `eval evaluates a named spatial predicate between two geometries
and prints 'true' or 'false'. The available predicates are: equals,
disjoint, touches, contains, covers, intersects, within, coveredby,
crosses, overlaps, and containsproperly.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, b, err := readGeometryPair(args[1], args[2], factoryFromConfig(Cfg))
		if err != nil {
			return err
		}
		start := time.Now()
		result, err := evalPredicate(args[0], a, b, Cfg.GetBool("prepared"))
		if err != nil {
			return err
		}
		logger.WithFields(logrus.Fields{
			"predicate": args[0],
			"elapsed":   time.Since(start),
		}).Debug("evaluated predicate")
		fmt.Println(cast.ToString(result))
		return nil
	},
	DisableAutoGenTag: true,
}

// evalPredicate runs a named predicate, optionally through a
// prepared copy of the first geometry.
func evalPredicate(name string, a, b planar.Geom, prepared bool) (bool, error) {
	if prepared {
		p := prep.Prepare(a)
		switch name {
		case "contains":
			return p.Contains(b)
		case "containsproperly":
			return p.ContainsProperly(b)
		case "coveredby":
			return p.CoveredBy(b)
		case "covers":
			return p.Covers(b)
		case "crosses":
			return p.Crosses(b)
		case "disjoint":
			return p.Disjoint(b)
		case "equals":
			// Equality gains nothing from preparation.
			return planar.Equals(a, b)
		case "intersects":
			return p.Intersects(b)
		case "overlaps":
			return p.Overlaps(b)
		case "touches":
			return p.Touches(b)
		case "within":
			return p.Within(b)
		}
		return false, fmt.Errorf("planar: unknown predicate %q", name)
	}
	switch name {
	case "contains":
		return planar.Contains(a, b)
	case "containsproperly":
		return planar.RelatePattern(a, b, "T**FF*FF*")
	case "coveredby":
		return planar.CoveredBy(a, b)
	case "covers":
		return planar.Covers(a, b)
	case "crosses":
		return planar.Crosses(a, b)
	case "disjoint":
		return planar.Disjoint(a, b)
	case "equals":
		return planar.Equals(a, b)
	case "intersects":
		return planar.Intersects(a, b)
	case "overlaps":
		return planar.Overlaps(a, b)
	case "touches":
		return planar.Touches(a, b)
	case "within":
		return planar.Within(a, b)
	}
	return false, fmt.Errorf("planar: unknown predicate %q", name)
}
