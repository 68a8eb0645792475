// Copyright (c) 2026 the ScriptHub authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package blob stores uploaded thumbnail bytes and mints public URLs.

Keys combine a millisecond timestamp with the uploader's suggested file name:

	thumbnails/1756339200123-cover.png

FileStore is the filesystem implementation; the router serves its directory
under the URL prefix the store was built with. Delete allows the submission
handler to clean up an orphaned upload when the database insert fails.
*/
package blob
