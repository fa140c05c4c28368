// Package output renders audit reports for human and machine
// consumers. The text renderer mirrors the official bilingual report
// layout (Thai section headers with English keys); the JSON renderer
// emits the contract records verbatim.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"land-audit/core/types"
)

// Format represents an output format type
type Format string

const (
	// FormatText is the human-readable bilingual report
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the report to w
	Render(w io.Writer, report *types.AuditReport) error
}

// ForFormat returns the formatter for a format name, defaulting to text
func ForFormat(name string) Formatter {
	if Format(name) == FormatJSON {
		return JSONFormatter{}
	}
	return TextFormatter{}
}

// JSONFormatter renders the report as indented JSON
type JSONFormatter struct{}

// Format returns FormatJSON
func (JSONFormatter) Format() Format { return FormatJSON }

// Render writes the report as JSON
func (JSONFormatter) Render(w io.Writer, report *types.AuditReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// TextFormatter renders the official bilingual audit report sections
type TextFormatter struct{}

// Format returns FormatText
func (TextFormatter) Format() Format { return FormatText }

// Render writes the report in the official section layout
func (TextFormatter) Render(w io.Writer, report *types.AuditReport) error {
	fmt.Fprintln(w, "รายงานผลการตรวจสอบโครงการพัฒนาที่ดินราชพัสดุ")
	fmt.Fprintln(w, "(Treasury Land Development Audit Report)")
	fmt.Fprintf(w, "ชื่อโครงการ (Project): %s\n", report.ProjectName)
	fmt.Fprintf(w, "รหัสรายงาน (Report ID): %s\n", report.ID)
	fmt.Fprintf(w, "วันที่ (Date): %s\n\n", report.CreatedAt)

	fmt.Fprintln(w, "1. บทสรุปผู้บริหาร (Executive Summary)")
	fmt.Fprintf(w, "   สถานะภาพรวม (Overall Status): %s\n", report.OverallStatus)
	for _, a := range report.Advisories {
		fmt.Fprintf(w, "   คำเตือน (Advisory): %s\n", a)
	}
	fmt.Fprintln(w)

	if d := report.Density; d != nil {
		fmt.Fprintln(w, "2. การวิเคราะห์เชิงพื้นที่ (Bertaud Density Analysis)")
		fmt.Fprintf(w, "   ดัชนีประสิทธิภาพ (Efficiency Index): %.2f\n", d.EfficiencyIndex)
		fmt.Fprintf(w, "   ความหนาแน่นตามทฤษฎี (Theoretical FAR): %.2f\n", d.TheoreticalDensity)
		fmt.Fprintf(w, "   สถานะความหนาแน่น (Density Status): %s\n", d.Status)
		if ga := d.GapAnalysis; ga != nil {
			fmt.Fprintf(w, "   FAR ตามกฎหมาย (Legal Max FAR): %.2f\n", ga.LegalMaxFAR)
			fmt.Fprintf(w, "   ส่วนต่างอุปสงค์ (Mismatch Gap): %+.2f\n", ga.FARMismatchGap)
			fmt.Fprintf(w, "   ข้อเสนอแนะ (Recommendation): %s\n", ga.PolicyRecommendation)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "3. การวิเคราะห์ทางการเงิน (Financial Analysis)")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "   ตัวชี้วัด (Metric)\tค่า (Value)\tสถานะ (Status)")

	npvStatus := "ติดลบ (Negative)"
	if report.StateNPV.IsPositive() {
		npvStatus = "เป็นบวก (Positive)"
	}
	fmt.Fprintf(tw, "   NPV รัฐ (State NPV)\t%s THB\t%s\n", report.StateNPV.Round(2), npvStatus)

	if roa := report.ROA; roa != nil {
		fmt.Fprintf(tw, "   ผลตอบแทนต่อสินทรัพย์ (ROA)\t%s%%\t%s\n", roa.ROAPercent.Round(2), roa.Status)
	}
	if cost := report.CostValidation; cost != nil {
		fmt.Fprintf(tw, "   ตรวจสอบค่าก่อสร้าง (Cost Check)\t%s%% deviation\t%s\n", cost.DeviationPercent.Round(2), cost.Status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if s := report.Sensitivity; s != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "4. การวิเคราะห์ความอ่อนไหว (Discount Rate Sensitivity)")
		fmt.Fprintf(w, "   กรณีฐาน (Base Case): %s\n", s.BaseCase.Round(2))
		fmt.Fprintf(w, "   +2%%: %s\n", s.PlusTwoPercent.Round(2))
		fmt.Fprintf(w, "   -2%%: %s\n", s.MinusTwoPercent.Round(2))
	}

	return nil
}
