// Copyright (c) 2026 the ScriptHub authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package gameinfo proxies the upstream game metadata lookup.

Resolve performs two chained GETs (place -> universe, universe -> game
details), both carrying the identifying User-Agent header. Any failure along
the way - transport error, non-2xx status, or an empty data array - comes
back as a single *UpstreamError with a descriptive message. There is no
retry, caching or timeout policy beyond the HTTP client's defaults.

The icon URL branches on universeAvatarType: user-owned universes get a
head-shot thumbnail URL, everything else a group icon URL. Both reuse the
upstream's creatorId field as-is.
*/
package gameinfo
