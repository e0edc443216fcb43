// Package gwasplot draws the two standard plots of genome-wide association
// studies from already computed test results.
//
// # QQ Plots
//
// A QQ plot compares observed and expected p-values on a -log10 scale:
//
//	fig, err := p.QQ(df, "Observed", "Expected", gwasplot.QQOptions{})
//
// A column holding a probability of 0 makes the derived axis bound
// infinite. QQ then logs a warning naming the axis and returns neither a
// figure nor an error; pass XMax or YMax to plot such data.
//
// # Manhattan Plots
//
// A Manhattan plot shows -log10(p) by position, one unit wide band per
// chromosome:
//
//	fig, err := p.Manhattan(df, "Chrom", "Pos", "P", gwasplot.ManhattanOptions{})
//
// Positions are expected to be normalized to [0,1] within each chromosome.
// Bands appear in the order the frame reports the chromosomes unless
// SortGroups is set.
//
// # Data
//
// Both plots read from a frame.Frame. Use frame.NewDataFrame for a slice
// of structs and arrowframe.New for an Arrow record.
//
// # Output
//
// If SaveTo is set the figure is written to that file, the format is taken
// from the extension. Otherwise the figure is shown on the Plotter's
// Display, which the host application sets up once:
//
//	p := gwasplot.New(&gwasplot.FileDisplay{Dir: "figures"})
//
// Visual constants live in Style and can be read from a TOML file with
// LoadStyle.
package gwasplot
