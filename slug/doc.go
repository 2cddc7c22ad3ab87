// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package slug turns note titles into URL- and filesystem-safe slugs.

	slug.Make("Héllo,  Wörld!") // "hello-world"

The slug is cosmetic: it is recomputed from the current title on every
publish and never used to look a note up. Output always matches
^[a-z0-9-]*$ with single hyphens between words and none at either end.
Titles with no ASCII-representable characters produce an empty slug.
*/
package slug
