// Package walker drives a crawl of one user's answers.
//
// A Walker fetches answers pages in order starting at page 0, classifies
// every candidate link on a page and hands downloadable media to the
// downloader, then pauses before the next page. The first page answered
// with anything but 200 ends the crawl; the site uses 204 once the pages
// run out. A connection failure on a page ends it too. Failures on a single
// media item never stop the crawl.
//
// Everything runs on the calling goroutine. Sequence numbers follow the
// order links appear on the page.
package walker
