package filestoragehandler

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"conges-backend/db"
	documentstore "conges-backend/lib/file-storage/store"
	leaverequeststore "conges-backend/lib/leave-request/store"
	dbmodels "conges-backend/models/db"
	s3client "conges-backend/s3"
)

type DocumentView struct {
	ID          string `json:"id"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
}

type Provider interface {
	Upload(ctx context.Context, matricule, leaveRequestID, fileName, contentType string, body []byte) (id string, err error)
	Download(ctx context.Context, id string) (rec *dbmodels.Document, body []byte, err error)
	Delete(ctx context.Context, id string) error
	ListByLeaveRequest(leaveRequestID string) (list []DocumentView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:      documentstore.NewInstance(db.DB),
		leaveStore: leaverequeststore.NewInstance(db.DB),
		s3:         s3client.Instance,
	}
}

type impl struct {
	store      documentstore.Provider
	leaveStore leaverequeststore.Provider
	s3         s3client.Provider
}

func (i impl) Upload(ctx context.Context, matricule, leaveRequestID, fileName, contentType string, body []byte) (id string, err error) {
	if fileName == "" {
		return "", errors.New("nom de fichier non renseigné")
	}
	if len(body) == 0 {
		return "", errors.New("fichier vide")
	}
	if leaveRequestID != "" {
		req, err := i.leaveStore.GetByID(leaveRequestID)
		if err != nil {
			return "", errors.Wrap(err, "erreur de vérification de la demande de congé")
		}
		if req == nil {
			return "", errors.New("demande de congé introuvable")
		}
	}
	rec := dbmodels.Document{
		Matricule:   matricule,
		FileName:    fileName,
		ContentType: contentType,
	}
	if leaveRequestID != "" {
		rec.LeaveRequestID = &leaveRequestID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "erreur d'enregistrement du justificatif")
	}
	key := fmt.Sprintf("documents/%s/%s", matricule, id)
	err = i.s3.PutObject(ctx, key, body, contentType)
	if err != nil {
		// pas de ligne en base sans objet stocké
		_ = i.store.Delete(id)
		return "", errors.Wrap(err, "erreur de dépôt du fichier")
	}
	err = i.store.Update(id, key)
	if err != nil {
		return "", errors.Wrap(err, "erreur d'enregistrement de la clé de stockage")
	}
	return id, nil
}

func (i impl) Download(ctx context.Context, id string) (rec *dbmodels.Document, body []byte, err error) {
	rec, err = i.store.GetByID(id)
	if err != nil {
		return nil, nil, errors.Wrap(err, "erreur de récupération du justificatif")
	}
	if rec == nil {
		return nil, nil, nil
	}
	body, err = i.s3.GetObject(ctx, rec.S3Key)
	if err != nil {
		return nil, nil, errors.Wrap(err, "erreur de lecture du fichier")
	}
	return rec, body, nil
}

func (i impl) Delete(ctx context.Context, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "erreur de récupération du justificatif")
	}
	if rec == nil {
		return errors.New("justificatif introuvable")
	}
	err = i.s3.RemoveObject(ctx, rec.S3Key)
	if err != nil {
		return errors.Wrap(err, "erreur de suppression du fichier")
	}
	return i.store.Delete(id)
}

func (i impl) ListByLeaveRequest(leaveRequestID string) (list []DocumentView, err error) {
	recs, err := i.store.ListByLeaveRequest(leaveRequestID)
	if err != nil {
		return nil, errors.Wrap(err, "erreur de récupération des justificatifs")
	}
	list = make([]DocumentView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, DocumentView{
			ID:          rec.ID,
			FileName:    rec.FileName,
			ContentType: rec.ContentType,
		})
	}
	return list, nil
}
