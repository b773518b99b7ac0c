/*
Package nnueaccum implements the incremental accumulator engine of an NNUE
(Efficiently Updatable Neural Network) chess position evaluator: the
feature index set, the fused SIMD row-reduction primitive, the per-ply
accumulator stack, and the per-king-square refresh cache that together let
a search re-evaluate a position after one move in time proportional to the
move's feature delta rather than to the whole board.

This code is derived from Stockfish, a UCI chess playing engine.
Copyright (C) 2004-2026 The Stockfish developers (see AUTHORS file)

Stockfish is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Stockfish is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

Original C++ source: https://github.com/official-stockfish/Stockfish

# Scope

This package owns the accumulator engine only. Weight file loading, the
move generator and search, the board representation, and the network's
downstream layers past the feature transformer are all external
collaborators consumed through small interfaces (see Position and
FeatureTransformer).

# Usage

	nets := nnueaccum.NetworkPair{Big: bigFT, Small: smallFT}
	eval := nnueaccum.NewEvaluator(nets, maxDepth, nil)
	eval.Reset(rootPos)

	eval.Push(dirtyPiece)
	acc := eval.Evaluate(posAfterMove)

	eval.Pop()
*/
package nnueaccum
