// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package config

// evalConfiguration controls which evaluation terms are active. The
// numeric weight of every active term lives in weights.Weights, not here,
// so tuning runs can swap weight sets without touching this config.
type evalConfiguration struct {
	UseLazyEval       bool
	LazyEvalThreshold int16

	UseTempo bool

	UseMobility bool

	UsePieceEval        bool
	UseBishopPair       bool
	UseRookOpenFile     bool
	UseRookOnSeventh    bool
	UseKnightOutpost    bool
	UseTrappedPieceMalus bool

	UseKingSafety    bool
	UsePawnShield    bool
	UseKingRingAttacks bool

	UsePawnEval   bool
	UsePawnCache  bool
	PawnCacheSizeMB int

	UsePassedPawn    bool
	UseIsolatedPawn  bool
	UseDoubledPawn   bool
	UsePawnPhalanx   bool
	UsePawnSupport   bool

	WeightSet string
}

func setupEval() {
	e := &Settings.Eval

	e.UseLazyEval = true
	if e.LazyEvalThreshold == 0 {
		e.LazyEvalThreshold = 700
	}

	e.UseTempo = true
	e.UseMobility = true

	e.UsePieceEval = true
	e.UseBishopPair = true
	e.UseRookOpenFile = true
	e.UseRookOnSeventh = true
	e.UseKnightOutpost = true
	e.UseTrappedPieceMalus = true

	e.UseKingSafety = true
	e.UsePawnShield = true
	e.UseKingRingAttacks = true

	e.UsePawnEval = true
	e.UsePawnCache = true
	if e.PawnCacheSizeMB == 0 {
		e.PawnCacheSizeMB = 16
	}

	e.UsePassedPawn = true
	e.UseIsolatedPawn = true
	e.UseDoubledPawn = true
	e.UsePawnPhalanx = true
	e.UsePawnSupport = true

	if e.WeightSet == "" {
		e.WeightSet = "default"
	}
}
