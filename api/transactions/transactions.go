// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package transactions

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/zemse/parity-esn/admission"
	"github.com/zemse/parity-esn/api/utils"
	"github.com/zemse/parity-esn/tx"
)

// MaxBatchSize is the maximum number of transactions in one batch request.
const MaxBatchSize = 1024

type Transactions struct {
	gate *admission.Gate
}

func New(gate *admission.Gate) *Transactions {
	return &Transactions{gate}
}

func (t *Transactions) handleVerify(w http.ResponseWriter, req *http.Request) error {
	var raw RawTx
	if err := utils.ParseJSON(req.Body, &raw); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	data, err := raw.decode()
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "raw"))
	}

	verified, err := t.gate.VerifyRaw(data)
	if err != nil {
		return rejectionError(err)
	}
	pending := tx.NewPendingTransaction(verified, raw.Condition)
	countAction(verified)
	return utils.WriteJSON(w, ConvertTransaction(pending.VerifiedTransaction, pending.Condition))
}

func (t *Transactions) handleVerifyBatch(w http.ResponseWriter, req *http.Request) error {
	var batch RawBatch
	if err := utils.ParseJSON(req.Body, &batch); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if len(batch.Raws) > MaxBatchSize {
		return utils.BadRequest(errors.Errorf("raws: more than %d transactions", MaxBatchSize))
	}

	items := make([]BatchItem, len(batch.Raws))
	raws := make([][]byte, 0, len(batch.Raws))
	index := make([]int, 0, len(batch.Raws))
	for i, s := range batch.Raws {
		data, err := (&RawTx{Raw: s}).decode()
		if err != nil {
			items[i].Rejection = ConvertRejection(tx.RLPError(err))
			continue
		}
		raws = append(raws, data)
		index = append(index, i)
	}

	for j, res := range t.gate.VerifyBatch(req.Context(), raws) {
		item := &items[index[j]]
		if res.Err != nil {
			item.Rejection = ConvertRejection(res.Err)
			continue
		}
		countAction(res.Tx)
		item.OK = true
		item.Tx = ConvertTransaction(res.Tx, nil)
	}
	return utils.WriteJSON(w, items)
}

func rejectionError(err error) error {
	switch {
	case admission.IsMalformed(err):
		return utils.HTTPErrorWithBody(err, http.StatusBadRequest, ConvertRejection(err))
	case admission.IsRejected(err):
		return utils.HTTPErrorWithBody(err, http.StatusForbidden, ConvertRejection(err))
	default:
		return err
	}
}

func countAction(trx *tx.VerifiedTransaction) {
	action := "call"
	if trx.Action().IsCreate() {
		action = "create"
	}
	metricActionCount().AddWithLabel(1, map[string]string{"action": action})
}

func (t *Transactions) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("/verify").
		Methods(http.MethodPost).
		Name("POST /transactions/verify").
		HandlerFunc(utils.WrapHandlerFunc(t.handleVerify))
	sub.Path("/verify/batch").
		Methods(http.MethodPost).
		Name("POST /transactions/verify/batch").
		HandlerFunc(utils.WrapHandlerFunc(t.handleVerifyBatch))
}
