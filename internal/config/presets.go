package config

import "sort"

// Presets holds named inputs per algorithm that show its interesting cases.
var Presets = map[string]map[string]*Config{
	"insertion": {
		"classic":  {Algorithm: "insertion", Input: []int{29, 10, 14, 37, 13}},
		"sorted":   {Algorithm: "insertion", Input: []int{1, 2, 3, 4, 5, 6}},
		"reversed": {Algorithm: "insertion", Input: []int{6, 5, 4, 3, 2, 1}},
		"dupes":    {Algorithm: "insertion", Input: []int{3, 1, 3, 2, 1}},
	},
	"selection": {
		"classic":  {Algorithm: "selection", Input: []int{64, 25, 12, 22, 11}},
		"sorted":   {Algorithm: "selection", Input: []int{1, 2, 3, 4, 5}},
		"unstable": {Algorithm: "selection", Input: []int{2, 2, 1}},
	},
	"bubble": {
		"classic":  {Algorithm: "bubble", Input: []int{29, 10, 14, 37, 13, 5, 25, 45}},
		"sorted":   {Algorithm: "bubble", Input: []int{1, 2, 3, 4, 5}},
		"reversed": {Algorithm: "bubble", Input: []int{5, 4, 3, 2, 1}},
	},
	"merge": {
		"classic": {Algorithm: "merge", Input: []int{38, 27, 43, 3, 9, 82, 10}},
		"pow2":    {Algorithm: "merge", Input: []int{8, 7, 6, 5, 4, 3, 2, 1}},
		"dupes":   {Algorithm: "merge", Input: []int{3, 1, 3, 1}},
	},
	"quick": {
		"classic": {Algorithm: "quick", Input: []int{10, 80, 30, 90, 40, 50, 70}},
		"sorted":  {Algorithm: "quick", Input: []int{1, 2, 3, 4, 5, 6}},
		"equal":   {Algorithm: "quick", Input: []int{4, 4, 4, 4}},
	},
}

func GetPreset(algorithm, preset string) *Config {
	algoPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	cfg, ok := algoPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

// ListPresets returns the preset names for algorithm, sorted.
func ListPresets(algorithm string) []string {
	algoPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(algoPresets))
	for name := range algoPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
