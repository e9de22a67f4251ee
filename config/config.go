package config

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"math/rand"
	"path/filepath"
)

import (
	"github.com/timtadh/gspan/stores/bytes_int"
)

type Config struct {
	Input   string
	Output  string
	Cache   string
	Support int
	Ratio   float64
	Legacy  bool
	Dot     bool
	EmbMode string
	Stats   bool
}

func (c *Config) Copy() *Config {
	return &Config{
		Input:   c.Input,
		Output:  c.Output,
		Cache:   c.Cache,
		Support: c.Support,
		Ratio:   c.Ratio,
		Legacy:  c.Legacy,
		Dot:     c.Dot,
		EmbMode: c.EmbMode,
		Stats:   c.Stats,
	}
}

func (c *Config) Randstr() string {
	runes := make([]rune, 0, 10)
	for i := 0; i < 10; i++ {
		runes = append(runes, rune(97+rand.Intn(26)))
	}
	return string(runes)
}

func (c *Config) CacheFile(name string) string {
	return filepath.Join(c.Cache, name)
}

func (c *Config) BytesIntMultiMap(name string) (bytes_int.MultiMap, error) {
	if c.Cache == "" {
		return bytes_int.AnonBpTree()
	}
	return bytes_int.NewBpTree(c.CacheFile(name + "-" + c.Randstr() + ".bptree"))
}
