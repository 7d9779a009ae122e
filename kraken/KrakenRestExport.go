package kraken

import (
	"fmt"

	. "krakenapi"
)

var _INERNAL_REPORT_TYPE_CONVERTER = map[ReportType]string{
	REPORT_TRADES:  "trades",
	REPORT_LEDGERS: "ledgers",
}

var _INERNAL_REMOVAL_TYPE_CONVERTER = map[RemovalType]string{
	REMOVAL_DELETE: "delete",
	REMOVAL_CANCEL: "cancel",
}

// AddExport requests export of trades or ledgers.
// Responsive to OPT_FORMAT, OPT_FIELDS, OPT_START_TIME and OPT_END_TIME.
func (k *Kraken) AddExport(report ReportType, description string) ([]byte, error) {
	reportStd, ok := _INERNAL_REPORT_TYPE_CONVERTER[report]
	if !ok {
		return nil, &ArgumentError{Name: "report type", Value: fmt.Sprint(int64(report))}
	}

	k.SetOpt(OPT_REPORT, reportStd)
	k.SetOpt(OPT_DESCRIPTION, description)
	return k.DoSignRequest("AddExport", k.buildQuery([]ApiOption{
		OPT_REPORT, OPT_FORMAT, OPT_DESCRIPTION, OPT_FIELDS, OPT_START_TIME, OPT_END_TIME,
	}), nil)
}

// GetExportStatus reports the status of requested data exports.
func (k *Kraken) GetExportStatus(report ReportType) ([]byte, error) {
	reportStd, ok := _INERNAL_REPORT_TYPE_CONVERTER[report]
	if !ok {
		return nil, &ArgumentError{Name: "report type", Value: fmt.Sprint(int64(report))}
	}

	k.SetOpt(OPT_REPORT, reportStd)
	return k.DoSignRequest("ExportStatus", k.buildQuery([]ApiOption{OPT_REPORT}), nil)
}

// RetrieveExport fetches a processed data export by report id.
func (k *Kraken) RetrieveExport(id string) ([]byte, error) {
	k.SetOpt(OPT_ID, id)
	return k.DoSignRequest("RetrieveExport", k.buildQuery([]ApiOption{OPT_ID}), nil)
}

// RemoveExport deletes or cancels an export report. The removal argument is a
// closed enum; anything outside it is rejected up front.
func (k *Kraken) RemoveExport(id string, removal RemovalType) ([]byte, error) {
	removalStd, ok := _INERNAL_REMOVAL_TYPE_CONVERTER[removal]
	if !ok {
		return nil, &ArgumentError{Name: "removal type", Value: fmt.Sprint(int64(removal))}
	}

	k.SetOpt(OPT_ID, id)
	k.SetOpt(OPT_TYPE, removalStd)
	return k.DoSignRequest("RemoveExport", k.buildQuery([]ApiOption{OPT_ID, OPT_TYPE}), nil)
}
