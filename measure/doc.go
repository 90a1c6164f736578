// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package measure validates sparse measurement payloads and applies them as
partial updates.

# Allow-List

Only the ten numeric measurement names and gender are recognized. Unknown
keys are silently dropped, never an error: the policy is permissive input,
strict values.

# Value Rules

  - numeric field, non-null: coerced from a JSON number or numeric string
  - numeric field, null: clears the column
  - gender, non-null: must be exactly "man" or "woman"
  - gender, null: skipped (gender cannot be cleared through this path)

Any rule violation aborts the whole batch before a single write is
issued; the update is one atomic statement or nothing.

# Engine

Engine ties ParseUpdate to the credential store:

	saved, err := engine.SaveMeasurements(ctx, userID, raw)

saved == 0 with a nil error means nothing recognizable was submitted,
which callers report as a harmless no-op.
*/
package measure
