package h5table

import "fmt"

// NotContainerMessage is printed when the relabeling dataset is not an .h5 file.
const NotContainerMessage = "The dataset is not in the HDF5(.h5) format."

// RelabelResult lists the files written by Relabel.
type RelabelResult struct {
	DatasetCSV string
	CorrCSV    string
	Labels     []string
}

// Relabel names the rows and columns of the correlation matrix in
// resultPath after the "names" of the dataset container at datasetPath.
//
// Two files are written: the dataset's "values" as <dataset-stem>.csv with
// rows numbered from 1, and the matrix as <result-stem>.csv with the labels
// as row index. A dataset path without the .h5 suffix yields
// ErrNotContainer and writes nothing. Labels that do not match the values
// columns or the matrix dimensions yield ErrShapeMismatch, also before
// anything is written.
func Relabel(resultPath, datasetPath string) (*RelabelResult, error) {
	if !IsContainerPath(datasetPath) {
		return nil, wrapError("relabel", datasetPath, ErrNotContainer)
	}

	result, err := OpenContainer(resultPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = result.Close() }()
	if err := ResultSchema.Check(result); err != nil {
		return nil, wrapError("relabel", resultPath, err)
	}
	corr, err := result.Table(KeyCorrCoef)
	if err != nil {
		return nil, err
	}

	dataset, err := OpenContainer(datasetPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = dataset.Close() }()
	if err := TabularSchema.Check(dataset); err != nil {
		return nil, wrapError("relabel", datasetPath, err)
	}
	labels, err := dataset.Strings(KeyNames)
	if err != nil {
		return nil, err
	}
	values, err := dataset.Table(KeyValues)
	if err != nil {
		return nil, err
	}

	if err := values.SetColumns(labels); err != nil {
		return nil, wrapError("relabel values", datasetPath, err)
	}
	values.ShiftIndex(1)

	if corr.Rows() != corr.Cols() {
		return nil, wrapError("relabel corrcoef", resultPath,
			fmt.Errorf("matrix is %d x %d: %w", corr.Rows(), corr.Cols(), ErrShapeMismatch))
	}
	if err := corr.SetColumns(labels); err != nil {
		return nil, wrapError("relabel corrcoef", resultPath, err)
	}
	if err := corr.SetIndex(labels); err != nil {
		return nil, wrapError("relabel corrcoef", resultPath, err)
	}

	res := &RelabelResult{
		DatasetCSV: CSVPath(datasetPath),
		CorrCSV:    CSVPath(resultPath),
		Labels:     labels,
	}
	if err := WriteCSVFile(res.DatasetCSV, values); err != nil {
		return nil, err
	}
	if err := WriteCSVFile(res.CorrCSV, corr); err != nil {
		return nil, err
	}
	return res, nil
}
