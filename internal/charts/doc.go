// Package charts renders the two static summary charts from the final wide
// table: incidents per year, and incidents per situation split by the
// preplanned flag. Charts are emitted as self-contained HTML files using
// go-echarts. The chart stage is a pure consumer of the wide table; it
// never mutates its input.
package charts
